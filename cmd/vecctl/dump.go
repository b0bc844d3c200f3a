package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/mmap"
	"github.com/joshuapare/veckit/vec"
)

var (
	dumpRecordSize int
	dumpLimit      int
	dumpOffset     int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpRecordSize, "record-size", 0, "Expected record size in bytes; fails if the file disagrees")
	cmd.Flags().IntVar(&dumpLimit, "limit", 0, "Maximum records to dump (0 = all)")
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "First record index to dump")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file>",
		Short: "Hex dump of the live records",
		Long: `The dump command prints each live record as hex bytes, in index order.
Records are opaque to vecctl, so the dump shows their raw layout; the record
size is derived from the header. Spare capacity beyond the live records is
not shown.

Example:
  vecctl dump events.vec
  vecctl dump events.vec --offset 100 --limit 10
  vecctl dump events.vec --record-size 64
  vecctl dump events.vec --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

// recordDump is one dumped record in JSON output.
type recordDump struct {
	Index  int    `json:"index"`
	Offset int    `json:"offset"`
	Hex    string `json:"hex"`
}

func runDump(args []string) error {
	path := args[0]

	printVerbose("Opening vector file: %s\n", path)

	f, err := mmap.OpenReadOnly(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	b := f.Bytes()
	stats, err := vec.ReadStats(b)
	if err != nil {
		return fmt.Errorf("failed to read vector stats: %w", err)
	}
	if dumpRecordSize > 0 {
		// A caller that knows the record type can pin it; a mismatch means
		// this is some other vector type and dumping it would mislead.
		if err := vec.Validate(b, dumpRecordSize); err != nil {
			return fmt.Errorf("file does not hold %d-byte records: %w", dumpRecordSize, err)
		}
	}

	first, count := dumpWindow(stats.Length)
	records := make([]recordDump, 0, count)
	for i := first; i < first+count; i++ {
		off := vec.HeaderSize + i*stats.RecordSize
		records = append(records, recordDump{
			Index:  i,
			Offset: off,
			Hex:    hexBytes(b[off : off+stats.RecordSize]),
		})
	}

	// Output as JSON if requested
	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":        path,
			"length":      stats.Length,
			"capacity":    stats.Capacity,
			"record_size": stats.RecordSize,
			"records":     records,
		})
	}

	// Text output
	printInfo("\nVector File Dump: %s\n", path)
	printInfo("  %d records of %d bytes, showing %d\n\n",
		stats.Length, stats.RecordSize, len(records))

	for _, rec := range records {
		printInfo("  record %6d  0x%08x  %s\n", rec.Index, rec.Offset, rec.Hex)
	}
	if len(records) == 0 {
		printInfo("  (no records)\n")
	}

	return nil
}

// dumpWindow clamps the offset/limit flags to the live records.
func dumpWindow(length int) (first, count int) {
	first = dumpOffset
	if first < 0 {
		first = 0
	}
	if first > length {
		first = length
	}
	count = length - first
	if dumpLimit > 0 && count > dumpLimit {
		count = dumpLimit
	}
	return first, count
}

// hexBytes renders raw bytes as hex, space-grouped every 8 bytes for
// readability against fixed-width records.
func hexBytes(b []byte) string {
	var sb strings.Builder
	for i, c := range b {
		if i > 0 && i%8 == 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", c)
	}
	return sb.String()
}
