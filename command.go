package main

import (
	"fmt"
	"io"
	"strings"

	"recstore/column"
)

type MetaCommandResult int

const (
	MetaCommandSuccess MetaCommandResult = iota
	MetaCommandExit
	MetaCommandUnrecognizedCommand
)

type PrepareResult int

const (
	PrepareSuccess PrepareResult = iota
	PrepareSyntaxError
	PrepareUnrecognizedStatement
)

const shellHelp = `Statements:
  find <column> [match]   records whose column equals (numeric) or contains (text) match
  delete <id>             remove the first record with that id
  count                   number of records
  list                    all records
Meta commands:
  .columns                list columns and their types
  .help                   this text
  .exit                   leave the shell
`

// doMetaCommand handles lines starting with '.'.
func doMetaCommand(w io.Writer, line string) MetaCommandResult {
	switch strings.TrimSpace(line) {
	case ".exit":
		return MetaCommandExit
	case ".help":
		fmt.Fprint(w, shellHelp)
		return MetaCommandSuccess
	case ".columns":
		for _, col := range column.Records.Columns() {
			fmt.Fprintf(w, "%-8s %s\n", col.Name, col.Type)
		}
		return MetaCommandSuccess
	}
	return MetaCommandUnrecognizedCommand
}
