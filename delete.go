package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"recstore/logger"
	"recstore/table"
)

var deleteOut string

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete the record with the given id and write the rest as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return fmt.Errorf("invalid id %q: %w", args[0], err)
		}

		records, err := loadRecords(cfg)
		if err != nil {
			return err
		}
		records, found := table.DeleteByID(records, uint32(id))
		if found {
			logger.Infof("deleted record %d, %d remaining", id, len(records))
		} else {
			logger.Infof("no record with id %d", id)
		}

		if deleteOut == "" {
			return table.WriteJSON(cmd.OutOrStdout(), records)
		}
		return writeFileAtomic(deleteOut, func(w io.Writer) error {
			return table.WriteJSON(w, records)
		})
	},
}

// writeFileAtomic writes to a temporary file next to path and renames it into
// place, so a failed write leaves any existing file at path untouched.
func writeFileAtomic(path string, write func(w io.Writer) error) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

func init() {
	deleteCmd.Flags().StringVar(&deleteOut, "out", "", "File to write the remaining records to (default: stdout)")
}
