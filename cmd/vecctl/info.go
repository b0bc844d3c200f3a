package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>",
		Short: "Validate a vector file header and report basic metadata",
		Long: `The info command validates a vector file's header and displays its
metadata: record count, allocated capacity, derived record size, and
utilization.

Example:
  vecctl info events.vec
  vecctl info events.vec --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

// fileInfo is the info command's report, shared by text and JSON output.
type fileInfo struct {
	File        string  `json:"file"`
	FileSize    int     `json:"file_size"`
	Length      int     `json:"length"`
	Capacity    int     `json:"capacity"`
	RecordSize  int     `json:"record_size"`
	Utilization float64 `json:"utilization"`
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening vector file: %s\n", path)

	f, err := mmap.OpenReadOnly(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	stats, err := vec.ReadStats(f.Bytes())
	if err != nil {
		return fmt.Errorf("failed to read vector stats: %w", err)
	}

	info := fileInfo{
		File:       path,
		FileSize:   stats.FileSize,
		Length:     stats.Length,
		Capacity:   stats.Capacity,
		RecordSize: stats.RecordSize,
	}
	if stats.Capacity > 0 {
		info.Utilization = float64(stats.Length) / float64(stats.Capacity)
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(info)
	}

	// Text output
	printInfo("\nVector File Information:\n")
	printInfo("  File: %s\n", info.File)
	printInfo("  Size: %s\n", humanSize(int64(info.FileSize)))
	printInfo("  Records: %d\n", info.Length)
	printInfo("  Capacity: %d slots\n", info.Capacity)
	if info.Capacity > 0 {
		printInfo("  Record size: %d bytes\n", info.RecordSize)
		printInfo("  Utilization: %.1f%%\n", info.Utilization*100)
	} else {
		printInfo("  Record size: (empty vector, not derivable)\n")
	}

	printInfo("\nValidation:\n")
	printInfo("  ✓ Header valid\n")
	printInfo("  ✓ No corruption detected\n")

	return nil
}
