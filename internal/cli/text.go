package cli

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/bluebears-dev/ptero-cli-sub000/api"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/charset"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/config"
	"github.com/bluebears-dev/ptero-cli-sub000/pkg/eline"
)

type methodOpts struct {
	pivot   int
	variant string
	charset string
	seed    int64
}

func (o methodOpts) toTextConfig() (config.TextConfig, error) {
	variant, err := config.VariantByName(o.variant)
	if err != nil {
		return config.TextConfig{}, err
	}
	set, err := charset.ByName(o.charset)
	if err != nil {
		return config.TextConfig{}, err
	}

	textConfig := config.TextConfig{
		Pivot:   o.pivot,
		Variant: variant,
		Charset: set,
	}
	if o.seed != 0 {
		textConfig.Rng = rand.New(rand.NewSource(o.seed))
	}
	return textConfig, nil
}

func addMethodFlags(cmd *cobra.Command, opts *methodOpts) {
	cmd.Flags().IntVar(&opts.pivot, "pivot", 0, "Maximum length of a constructed cover line, in characters")
	cmd.Flags().StringVar(&opts.variant, "variant", "v1", "Sub-channel execution order. Options are v1, v2, v3")
	cmd.Flags().StringVar(&opts.charset, "charset", "four-bit", "Trailing character set. Options are one-bit, two-bit, four-bit")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed for the whitespace channel. 0 picks a random seed")
}

func TextCommands() *cobra.Command {
	textCmd := &cobra.Command{
		Use:     "text",
		Short:   "Performs steganography operations on plain text",
		Example: "ptero text encode --cover cover.txt --data secret.bin --output stego.txt --pivot 50",
	}

	textCmd.AddCommand(encodeTextCommand(), decodeTextCommand(), capacityTextCommand())
	return textCmd
}

type encodeTextOpts struct {
	coverFile  string
	dataFile   string
	outputFile string
	jsonOutput bool
	method     methodOpts
}

func encodeTextCommand() *cobra.Command {
	opts := encodeTextOpts{}

	encTextCmd := &cobra.Command{
		Use:     "encode",
		Example: "ptero text encode --cover cover.txt --data secret.bin --output stego.txt --pivot 50 --charset four-bit",
		Short:   "Conceal data inside a cover text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return EncodeTextFile(opts)
		},
	}

	encTextCmd.Flags().StringVar(&opts.coverFile, "cover", "", "Cover text file to hide data in (original will not be touched)")
	encTextCmd.Flags().StringVar(&opts.dataFile, "data", "", "File with the data to hide inside the cover text")
	encTextCmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path/name for the stego text")
	encTextCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the encode result as JSON instead of plain stats")
	addMethodFlags(encTextCmd, &opts.method)

	MarkFlagsRequired(encTextCmd, "cover", "data", "output", "pivot")

	return encTextCmd
}

func EncodeTextFile(opts encodeTextOpts) error {
	coverText, err := os.ReadFile(opts.coverFile)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(opts.dataFile)
	if err != nil {
		return err
	}
	logger.Debug("Read input files", "cover_bytes", len(coverText), "data_bytes", len(data))

	textConfig, err := opts.method.toTextConfig()
	if err != nil {
		return err
	}
	encoder, err := eline.NewEncoder(textConfig)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Concealing data "
	s.FinalMSG = fmt.Sprintf("Generated %s with %s hidden inside\n", opts.outputFile, humanize.Bytes(uint64(len(data))))

	var bitsWritten int
	observerID := encoder.Subscribe(eline.ObserverFunc(func(event eline.Event) {
		switch event.Kind {
		case eline.DataWritten:
			bitsWritten = event.BitsWritten
			s.Prefix = fmt.Sprintf("Concealing data (%d bits written) ", event.BitsWritten)
		case eline.Finished:
			s.Prefix = "Writing stego text "
		}
	}))
	defer encoder.Unsubscribe(observerID)

	s.Start()
	stegoText, err := encoder.Conceal(string(coverText), data)
	s.Stop()
	if err != nil {
		return err
	}

	if err = os.WriteFile(opts.outputFile, []byte(stegoText), 0664); err != nil {
		return err
	}

	if opts.jsonOutput {
		return printJSON(api.EncodeTextResponse{
			StegoText:   stegoText,
			BitsWritten: bitsWritten,
			Stats:       encoder.Stats(),
		})
	}

	fmt.Printf("Encoder setup time: %s\n", encoder.Stats().Setup)
	fmt.Printf("Data encode time: %s\n", encoder.Stats().DataEncoding)
	return nil
}

type decodeTextOpts struct {
	stegoFile     string
	outputFile    string
	payloadLength int
	jsonOutput    bool
	method        methodOpts
}

func decodeTextCommand() *cobra.Command {
	opts := decodeTextOpts{}

	decTextCmd := &cobra.Command{
		Use:     "decode",
		Example: "ptero text decode --stego stego.txt --output secret.bin --pivot 50 --length 16",
		Short:   "Reveal data previously concealed in a stego text file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return DecodeTextFile(opts)
		},
	}

	decTextCmd.Flags().StringVar(&opts.stegoFile, "stego", "", "Stego text file generated by ptero")
	decTextCmd.Flags().StringVar(&opts.outputFile, "output", "", "Output file path/name for the revealed data")
	decTextCmd.Flags().IntVar(&opts.payloadLength, "length", 0, "True payload length in bytes, used to trim the zero-padding tail")
	decTextCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the decode result as JSON instead of plain stats")
	addMethodFlags(decTextCmd, &opts.method)

	MarkFlagsRequired(decTextCmd, "stego", "output", "pivot")

	return decTextCmd
}

func DecodeTextFile(opts decodeTextOpts) error {
	stegoText, err := os.ReadFile(opts.stegoFile)
	if err != nil {
		return err
	}
	logger.Debug("Read stego text", "stego_bytes", len(stegoText))

	textConfig, err := opts.method.toTextConfig()
	if err != nil {
		return err
	}
	decoder, err := eline.NewDecoder(textConfig)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Revealing data "
	s.Start()
	data, err := decoder.Reveal(string(stegoText))
	s.Stop()
	if err != nil {
		return err
	}

	if opts.payloadLength > 0 && opts.payloadLength < len(data) {
		data = data[:opts.payloadLength]
	}

	if err = os.WriteFile(opts.outputFile, data, 0664); err != nil {
		return err
	}

	if opts.jsonOutput {
		return printJSON(api.DecodeTextResponse{
			Data:  data,
			Stats: decoder.Stats(),
		})
	}

	fmt.Printf("Revealed %s into %s\n", humanize.Bytes(uint64(len(data))), opts.outputFile)
	fmt.Printf("Data decode time: %s\n", decoder.Stats().DataDecoding)
	return nil
}

type capacityTextOpts struct {
	coverFile  string
	jsonOutput bool
	method     methodOpts
}

func capacityTextCommand() *cobra.Command {
	opts := capacityTextOpts{}

	capTextCmd := &cobra.Command{
		Use:     "capacity",
		Example: "ptero text capacity --cover cover.txt --pivot 50 --charset four-bit",
		Short:   "Estimate how much payload a cover text file can carry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return CapacityForTextFile(opts)
		},
	}

	capTextCmd.Flags().StringVar(&opts.coverFile, "cover", "", "Cover text file to measure")
	capTextCmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the capacity report as JSON")
	addMethodFlags(capTextCmd, &opts.method)

	MarkFlagsRequired(capTextCmd, "cover", "pivot")

	return capTextCmd
}

func CapacityForTextFile(opts capacityTextOpts) error {
	coverText, err := os.ReadFile(opts.coverFile)
	if err != nil {
		return err
	}

	textConfig, err := opts.method.toTextConfig()
	if err != nil {
		return err
	}

	report, err := eline.Capacity(string(coverText), textConfig)
	if err != nil {
		return err
	}

	if opts.jsonOutput {
		return printJSON(api.CapacityTextResponse{
			CapacityReport:    report,
			PayloadBytesHuman: humanize.Bytes(uint64(report.PayloadBytes)),
		})
	}

	fmt.Printf("Cover produces %d lines of up to %d characters\n", report.Lines, opts.method.pivot)
	fmt.Printf("Each line carries %d bits, %s in total\n", report.BitsPerLine, humanize.Comma(int64(report.TotalBits)))
	fmt.Printf("Maximum payload: %s\n", humanize.Bytes(uint64(report.PayloadBytes)))
	return nil
}

func printJSON(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
