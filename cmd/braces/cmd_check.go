package main

import (
	"os"

	"github.com/dhamidi/braces/balance"
	"github.com/spf13/cobra"
)

func newCheckCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Report lines where brace or paren balance goes negative",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := balance.ScanFile(args[0])
			if err != nil {
				return err
			}
			result.WriteReport(os.Stdout, limit)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", balance.DefaultLimit, "maximum number of problem lines to print")

	return cmd
}
