package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/backup"
)

func init() {
	rootCmd.AddCommand(newBackupCmd())
}

func newBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup <file> <archive>",
		Short: "Create a compressed backup of a vector file",
		Long: `The backup command writes a zstd-compressed snapshot of a vector file.
The source is validated first, so a backup can only be taken of a valid
vector file.

Example:
  vecctl backup events.vec events.vec.zst`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackup(args)
		},
	}
	return cmd
}

func runBackup(args []string) error {
	src, dst := args[0], args[1]

	printVerbose("Backing up %s to %s\n", src, dst)

	if err := backup.Create(src, dst); err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	result := map[string]interface{}{
		"source":  src,
		"archive": dst,
	}
	srcSize, dstSize := fileSize(src), fileSize(dst)
	if srcSize > 0 && dstSize > 0 {
		result["source_size"] = srcSize
		result["archive_size"] = dstSize
	}

	if jsonOut {
		return printJSON(result)
	}

	printInfo("Backed up %s to %s\n", src, dst)
	if srcSize > 0 && dstSize > 0 {
		printInfo("  %s -> %s (%.1f%%)\n",
			humanSize(srcSize), humanSize(dstSize), float64(dstSize)/float64(srcSize)*100)
	}
	return nil
}

// fileSize returns the size of the file at path, or 0 when it cannot be
// determined. Only used for reporting.
func fileSize(path string) int64 {
	st, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return st.Size()
}
