package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"recstore/config"
	"recstore/logger"
	"recstore/record"
	"recstore/table"
)

var (
	v   = config.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "recstore",
	Short: "In-memory record store with column filtering",
	// errors are logged once by main
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(v)
		if err != nil {
			return err
		}
		if err := logger.Init(c.Log.Level, c.Log.Format); err != nil {
			return err
		}
		cfg = c
		return nil
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data", "", "JSON file with the records to load (default: generated dummy records)")
	flags.StringP("output", "o", "table", "Output format: table or json")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn or error")
	flags.String("log-format", "console", "Log format: console or json")
	flags.Uint32("dummy-count", 1000, "Number of dummy records to generate when --data is not set")
	flags.String("dummy-prefix", "testdata", "Prefix used for generated dummy records")

	err := config.BindFlags(v, flags, map[string]string{
		config.KeyData:        "data",
		config.KeyOutput:      "output",
		config.KeyLogLevel:    "log-level",
		config.KeyLogFormat:   "log-format",
		config.KeyDummyCount:  "dummy-count",
		config.KeyDummyPrefix: "dummy-prefix",
	})
	if err != nil {
		panic(err)
	}

	rootCmd.AddCommand(findCmd, deleteCmd, benchCmd, shellCmd)
}

// loadRecords reads cfg.Data, or generates dummy records when it is empty.
func loadRecords(cfg *config.Config) ([]record.Record, error) {
	if cfg.Data == "" {
		logger.Debugf("generating %d dummy records with prefix %q", cfg.Dummy.Count, cfg.Dummy.Prefix)
		return table.PopulateDummy(cfg.Dummy.Prefix, cfg.Dummy.Count), nil
	}

	f, err := os.Open(cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	records, err := table.LoadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.Data, err)
	}
	if err := table.DuplicateIDs(records); err != nil {
		logger.Warnf("%s has duplicate ids: %s", cfg.Data, err)
	}
	logger.Debugf("loaded %d records from %s", len(records), cfg.Data)
	return records, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Fatal(err)
	}
}
