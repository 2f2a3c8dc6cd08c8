package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "braces",
		Short: "A delimiter balance checker for source files",
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
