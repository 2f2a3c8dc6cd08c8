package main

import (
	"fmt"
	"os"

	"github.com/dhamidi/braces/balance"
	"github.com/dhamidi/braces/balance/scanner"
	"github.com/spf13/cobra"
)

func newScanCmd() *cobra.Command {
	var exts []string

	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan a directory or file and summarize balance problems",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(args[0], exts)
		},
	}

	cmd.Flags().StringSliceVarP(&exts, "ext", "e", scanner.DefaultExtensions, "file extensions to scan")

	return cmd
}

func runScan(path string, exts []string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	var files []string
	var errors []string
	if info.IsDir() {
		files, errors = scanner.CollectFiles(path, exts)
	} else {
		files = []string{path}
	}

	fmt.Printf("Found %d files to scan\n", len(files))

	problemFiles := 0
	problemLines := 0
	unbalanced := 0
	for i, file := range files {
		fmt.Printf("[%d/%d] ", i+1, len(files))

		result, err := balance.ScanFile(file)
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			errors = append(errors, err.Error())
			continue
		}

		fmt.Printf("[OK] %s (%d problem lines)\n", file, len(result.Problems))
		if len(result.Problems) > 0 {
			problemFiles++
			problemLines += len(result.Problems)
		}
		if result.Braces != 0 || result.Parens != 0 {
			unbalanced++
		}
	}

	fmt.Printf("\n=== SCAN COMPLETE ===\n")
	fmt.Printf("Files with negative dips: %d (%d problem lines)\n", problemFiles, problemLines)
	fmt.Printf("Files with nonzero final counts: %d\n", unbalanced)
	fmt.Printf("Errors: %d\n", len(errors))
	for _, e := range errors {
		fmt.Printf("  - %s\n", e)
	}
	return nil
}
