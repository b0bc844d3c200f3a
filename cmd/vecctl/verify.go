package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

var verifyRecordSize int

func init() {
	cmd := newVerifyCmd()
	cmd.Flags().IntVar(&verifyRecordSize, "record-size", 0, "Validate against a known record size in bytes")
	rootCmd.AddCommand(cmd)
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <file>",
		Short: "Verify vector file structure",
		Long: `The verify command checks a vector file's structural integrity: the
signature, the header fields, and whether the byte length accounts for
exactly the recorded capacity. With --record-size it additionally pins the
record size the file must hold.

The result distinguishes corruption (recreate the file or restore a backup)
from I/O problems (fix the environment; the file itself may be fine).

Example:
  vecctl verify events.vec
  vecctl verify events.vec --record-size 64
  vecctl verify events.vec --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	path := args[0]

	printVerbose("Verifying vector file: %s\n", path)

	var verifyErr error
	f, err := mmap.OpenReadOnly(path)
	if err != nil {
		verifyErr = err
	} else {
		defer f.Close()
		if verifyRecordSize > 0 {
			verifyErr = vec.Validate(f.Bytes(), verifyRecordSize)
		} else {
			_, verifyErr = vec.ReadStats(f.Bytes())
		}
	}

	// Prepare result
	result := map[string]interface{}{
		"file":  path,
		"valid": verifyErr == nil,
	}
	if verifyRecordSize > 0 {
		result["record_size"] = verifyRecordSize
	}
	if verifyErr != nil {
		result["error"] = verifyErr.Error()
		result["kind"] = errorKind(verifyErr)
	}

	// Output as JSON if requested
	if jsonOut {
		if err := printJSON(result); err != nil {
			return err
		}
		return verifyErr
	}

	// Text output
	printInfo("\nVerifying %s...\n\n", path)

	if verifyErr != nil {
		switch errorKind(verifyErr) {
		case "corruption":
			printInfo("  ✗ Corruption: %v\n", verifyErr)
			printInfo("\nThe file is not a valid vector file. Recreate it or restore a backup.\n")
		default:
			printInfo("  ✗ I/O failure: %v\n", verifyErr)
			printInfo("\nThe file could not be inspected; it may still be intact.\n")
		}
		printInfo("\nResult: ✗ INVALID\n")
		return verifyErr
	}

	printInfo("  ✓ Signature valid\n")
	printInfo("  ✓ Header consistent with file size\n")
	if verifyRecordSize > 0 {
		printInfo("  ✓ Holds %d-byte records\n", verifyRecordSize)
	}
	printInfo("\nResult: ✓ VALID\n")

	return nil
}
