package main

import (
	"fmt"
	"os"

	"github.com/bluebears-dev/ptero-cli-sub000/internal/cli"
)

func main() {
	if err := cli.RootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
