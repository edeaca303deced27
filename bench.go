package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"recstore/logger"
	"recstore/table"
)

const benchDeleteID = 123

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time a delete and two queries over generated records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench(cfg.Dummy.Prefix, cfg.Dummy.Count)
	},
}

// runBench deletes id 123 from n dummy records, checks it is gone, then times
// a field_a query for prefix+"500" and a field_b query for 24. It fails unless
// exactly one record matches the field_a query, which holds for the default
// prefix and counts between 501 and 5000.
func runBench(prefix string, n uint32) error {
	data := table.PopulateDummy(prefix, n)

	data, _ = table.DeleteByID(data, benchDeleteID)
	gone, err := table.FindMatching(data, "id", fmt.Sprint(benchDeleteID))
	if err != nil {
		return err
	}
	if len(gone) != 0 {
		return fmt.Errorf("record %d still present after delete", benchDeleteID)
	}

	start := time.Now()
	byText, err := table.FindMatching(data, "field_a", prefix+"500")
	if err != nil {
		return err
	}
	byInt, err := table.FindMatching(data, "field_b", "24")
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	logger.Logger().Info().
		Uint32("records", n).
		Int("field_a_matches", len(byText)).
		Int("field_b_matches", len(byInt)).
		Dur("elapsed", elapsed).
		Msg("profiler")

	if len(byText) != 1 {
		return fmt.Errorf("field_a query for %q returned %d records, want 1", prefix+"500", len(byText))
	}
	return nil
}
