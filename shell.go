package main

import (
	"fmt"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"recstore/table"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell over the loaded records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := loadRecords(cfg)
		if err != nil {
			return err
		}
		tbl := table.New(records...)

		line := liner.NewLiner()
		defer line.Close()
		line.SetCtrlCAborts(true)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d records loaded. Type .help for commands.\n", tbl.Len())
		return runShell(line, out, tbl, cfg.Output)
	},
}
