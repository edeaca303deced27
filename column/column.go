package column

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"recstore/record"
)

type ColumnType int

const (
	ColumnTypeUint ColumnType = iota
	ColumnTypeInt
	ColumnTypeText
)

func (t ColumnType) String() string {
	switch t {
	case ColumnTypeUint:
		return "UINT"
	case ColumnTypeInt:
		return "INT"
	case ColumnTypeText:
		return "TEXT"
	}
	return fmt.Sprintf("ColumnType(%d)", int(t))
}

var (
	ErrUnknownColumn     = errors.New("unknown column")
	ErrInvalidMatchValue = errors.New("invalid match value")
)

// Predicate reports whether a record satisfies a single (column, match) pair.
type Predicate func(r record.Record) bool

// Column describes one field of a record: its name, its value type and how a
// match string is turned into a predicate over that field.
type Column struct {
	Name string
	Type ColumnType

	build  func(match string) (Predicate, error)
	format func(r record.Record) string
}

// BuildPredicate parses match once for the column's type and returns a
// predicate that does no further parsing or type dispatch.
func (c Column) BuildPredicate(match string) (Predicate, error) {
	return c.build(match)
}

// Value renders the column's value of r.
func (c Column) Value(r record.Record) string {
	return c.format(r)
}

type Schema []Column

func numericColumn[T uint32 | int64](name string, typ ColumnType, get func(record.Record) T, parse func(string) (T, error)) Column {
	return Column{
		Name: name,
		Type: typ,
		build: func(match string) (Predicate, error) {
			want, err := parse(match)
			if err != nil {
				return nil, fmt.Errorf("%w: column %q expects %s, got %q", ErrInvalidMatchValue, name, typ, match)
			}
			return func(r record.Record) bool {
				return get(r) == want
			}, nil
		},
		format: func(r record.Record) string {
			return fmt.Sprint(get(r))
		},
	}
}

func textColumn(name string, get func(record.Record) string) Column {
	return Column{
		Name: name,
		Type: ColumnTypeText,
		build: func(match string) (Predicate, error) {
			return func(r record.Record) bool {
				return strings.Contains(get(r), match)
			}, nil
		},
		format: get,
	}
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parseInt64(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
