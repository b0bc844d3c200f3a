package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/veckit/vec"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
)

// num renders counts with thousands separators in text output.
var num = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   "vecctl",
	Short: "Inspect and manage vector files",
	Long: `vecctl is a tool for inspecting and managing vector files: persistent,
growable arrays of fixed-size records stored in memory-mapped files. It
reports header metadata, dumps raw records, verifies structural integrity,
and creates and restores compressed backups.

Inspection commands open files read-only and never create or modify them.`,
	Version: "0.1.0",
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		num.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// errorKind classifies a failure for the user: corruption means the file is
// not a valid vector file and should be recreated or restored from backup;
// an I/O failure means the environment needs fixing and the file may be fine.
func errorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, vec.ErrBadMagic),
		errors.Is(err, vec.ErrSizeMismatch),
		errors.Is(err, vec.ErrAlignment):
		return "corruption"
	default:
		return "io"
	}
}

// humanSize renders a byte count as bytes, KB, or MB.
func humanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d bytes", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
