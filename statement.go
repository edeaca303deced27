package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"recstore/record"
	"recstore/table"
)

type StatementType int

const (
	StatementFind StatementType = iota
	StatementDelete
	StatementCount
	StatementList
)

type Statement struct {
	Type   StatementType
	Column string
	Match  string
	ID     uint32
}

// cut splits off the first space-separated word of s.
func cut(s string) (word, rest string) {
	word, rest, _ = strings.Cut(strings.TrimSpace(s), " ")
	return word, strings.TrimLeft(rest, " ")
}

// prepareStatement parses one shell line:
//
//	find <column> [match]   match may be double-quoted
//	delete <id>
//	count
//	list
func prepareStatement(input string, stmt *Statement) PrepareResult {
	verb, rest := cut(input)
	switch verb {
	case "find":
		col, match := cut(rest)
		if col == "" {
			return PrepareSyntaxError
		}
		if strings.HasPrefix(match, `"`) {
			unquoted, err := strconv.Unquote(match)
			if err != nil {
				return PrepareSyntaxError
			}
			match = unquoted
		}
		*stmt = Statement{Type: StatementFind, Column: col, Match: match}
		return PrepareSuccess

	case "delete":
		id, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return PrepareSyntaxError
		}
		*stmt = Statement{Type: StatementDelete, ID: uint32(id)}
		return PrepareSuccess

	case "count", "list":
		if rest != "" {
			return PrepareSyntaxError
		}
		*stmt = Statement{Type: StatementCount}
		if verb == "list" {
			stmt.Type = StatementList
		}
		return PrepareSuccess
	}
	return PrepareUnrecognizedStatement
}

func executeStatement(w io.Writer, tbl *table.Table, stmt *Statement, output string) error {
	switch stmt.Type {
	case StatementFind:
		result, err := tbl.FindMatching(stmt.Column, stmt.Match)
		if err != nil {
			return err
		}
		if err := renderRecords(w, output, result); err != nil {
			return err
		}
		if output == outputTable {
			fmt.Fprintf(w, "%d record(s)\n", len(result))
		}
	case StatementDelete:
		if tbl.DeleteByID(stmt.ID) {
			fmt.Fprintf(w, "Deleted record %d.\n", stmt.ID)
		} else {
			fmt.Fprintf(w, "No record with id %d.\n", stmt.ID)
		}
	case StatementCount:
		fmt.Fprintln(w, tbl.Len())
	case StatementList:
		rows := make([]record.Record, 0, tbl.Len())
		for c := tbl.NewCursor(); c.Valid(); c.Next() {
			rows = append(rows, c.Value())
		}
		return renderRecords(w, output, rows)
	}
	return nil
}
