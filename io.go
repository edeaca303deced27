package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/peterh/liner"

	"recstore/column"
	"recstore/record"
	"recstore/table"
)

const (
	prompt = "recstore > "

	outputTable = "table"
	outputJSON  = "json"
)

// lineReader is the part of *liner.State the shell loop needs.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// readInput returns the next non-empty line, trimmed. io.EOF is returned on
// end of input or when the user aborts with Ctrl-C.
func readInput(r lineReader) (string, error) {
	for {
		input, err := r.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		r.AppendHistory(input)
		return input, nil
	}
}

func renderRecords(w io.Writer, output string, records []record.Record) error {
	switch output {
	case outputJSON:
		return table.WriteJSON(w, records)
	case outputTable, "":
		cols := column.Records.Columns()
		tw := tablewriter.NewWriter(w)
		tw.SetHeader(column.Records.Names())
		tw.SetAutoFormatHeaders(false)
		for _, r := range records {
			row := make([]string, len(cols))
			for i, col := range cols {
				row[i] = col.Value(r)
			}
			tw.Append(row)
		}
		tw.Render()
		return nil
	}
	return fmt.Errorf("unknown output format %q", output)
}

// runShell reads statements from in until .exit or end of input. Statement
// errors are printed and do not stop the loop.
func runShell(in lineReader, w io.Writer, tbl *table.Table, output string) error {
	for {
		input, err := readInput(in)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.HasPrefix(input, ".") {
			switch doMetaCommand(w, input) {
			case MetaCommandExit:
				return nil
			case MetaCommandUnrecognizedCommand:
				fmt.Fprintf(w, "Unrecognized command '%s'.\n", input)
			}
			continue
		}

		var stmt Statement
		switch prepareStatement(input, &stmt) {
		case PrepareSyntaxError:
			fmt.Fprintf(w, "Syntax error in '%s'. Type .help for usage.\n", input)
			continue
		case PrepareUnrecognizedStatement:
			fmt.Fprintf(w, "Unrecognized keyword at start of '%s'.\n", input)
			continue
		}

		if err := executeStatement(w, tbl, &stmt, output); err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
		}
	}
}
