package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/bluebears-dev/ptero-cli-sub000/internal/logging"
)

type rootOpts struct {
	verbose       bool
	cpuProfile    string
	memProfileDir string
}

// logger is shared by all commands; rebuilt per run from the verbosity flag.
var logger = logging.BuildLogger(slog.LevelInfo)

// RootCommand assembles the full ptero command tree.
func RootCommand() *cobra.Command {
	opts := rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "ptero",
		Short:         "Hide binary payloads inside plain text by modulating whitespace and line wrapping",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				logger = logging.BuildLogger(slog.LevelDebug)
			}
			return startProfiling(opts.cpuProfile, opts.memProfileDir)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			stopProfiling()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug output while running")
	rootCmd.PersistentFlags().StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump a CPU profile into the supplied file")
	rootCmd.PersistentFlags().StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(TextCommands(), ServeAppCommand())
	return rootCmd
}
