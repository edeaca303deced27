package main

import (
	"github.com/spf13/cobra"

	"recstore/logger"
	"recstore/table"
)

var findCmd = &cobra.Command{
	Use:   "find <column> [match]",
	Short: "Print the records whose column matches",
	Long: `Print the records whose column matches.

Numeric columns (id, field_b) match on exact equality; text columns
(field_a, field_c) match when the value contains the match string.
An omitted match string matches every record of a text column.

Flags must come before the column name, so that negative values such as
"find field_b -7" are read as the match string.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var match string
		if len(args) == 2 {
			match = args[1]
		}

		records, err := loadRecords(cfg)
		if err != nil {
			return err
		}
		result, err := table.FindMatching(records, args[0], match)
		if err != nil {
			return err
		}
		logger.Debugf("%s matched %d of %d records", args[0], len(result), len(records))
		return renderRecords(cmd.OutOrStdout(), cfg.Output, result)
	},
}

func init() {
	findCmd.Flags().SetInterspersed(false)
}
