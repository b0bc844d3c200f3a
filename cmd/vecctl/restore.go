package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/veckit/backup"
)

func init() {
	rootCmd.AddCommand(newRestoreCmd())
}

func newRestoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <archive> <file>",
		Short: "Restore a vector file from a compressed backup",
		Long: `The restore command decompresses a backup archive into a vector file,
replacing any existing file at the destination. The decompressed bytes are
validated before they are installed, so a bad archive never replaces a good
file.

Example:
  vecctl restore events.vec.zst events.vec`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRestore(args)
		},
	}
	return cmd
}

func runRestore(args []string) error {
	src, dst := args[0], args[1]

	printVerbose("Restoring %s from %s\n", dst, src)

	if err := backup.Restore(src, dst); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"archive": src,
			"file":    dst,
			"size":    fileSize(dst),
		})
	}

	printInfo("Restored %s from %s (%s)\n", dst, src, humanSize(fileSize(dst)))
	return nil
}
