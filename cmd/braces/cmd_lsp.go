package main

import (
	"github.com/dhamidi/braces/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

const version = "0.1.0"

func newLSPCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			verbosity := 0
			if debug {
				verbosity = 2
			}
			commonlog.Configure(verbosity, nil)

			server := lsp.NewServer(version, debug)
			return server.RunStdio()
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "log protocol traffic to stderr")

	return cmd
}
