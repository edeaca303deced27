package table

import (
	"slices"

	"recstore/column"
	"recstore/record"
)

// FindMatching returns the records whose columnName field matches match, in
// their original order. Numeric columns compare for equality and text columns
// for substring containment. The column is resolved and match is parsed
// before any record is looked at, so a bad request never scans.
//
// The result is a fresh slice that shares nothing with records.
func FindMatching(records []record.Record, columnName, match string) ([]record.Record, error) {
	pred, err := predicate(columnName, match)
	if err != nil {
		return nil, err
	}

	result := make([]record.Record, 0)
	for _, r := range records {
		if pred(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

func predicate(columnName, match string) (column.Predicate, error) {
	col, err := column.Records.Resolve(columnName)
	if err != nil {
		return nil, err
	}
	return col.BuildPredicate(match)
}

// DeleteByID removes the first record with the given id and reports whether
// one was found. Ids are assumed to be unique; if they are not, later
// duplicates stay in place. The remaining records keep their order and the
// returned slice reuses the backing array of records; the vacated
// tail slot is zeroed.
func DeleteByID(records []record.Record, id uint32) ([]record.Record, bool) {
	i := slices.IndexFunc(records, func(r record.Record) bool { return r.ID == id })
	if i < 0 {
		return records, false
	}
	return slices.Delete(records, i, i+1), true
}

// Table is an in-memory record store. It is not safe for concurrent use;
// callers sharing a Table across goroutines must guard it themselves.
type Table struct {
	rows []record.Record
}

func New(records ...record.Record) *Table {
	rows := make([]record.Record, len(records))
	copy(rows, records)
	return &Table{rows: rows}
}

func (t *Table) Insert(r record.Record) {
	t.rows = append(t.rows, r)
}

func (t *Table) Len() int { return len(t.rows) }

// Rows returns a copy of the stored records.
func (t *Table) Rows() []record.Record {
	out := make([]record.Record, len(t.rows))
	copy(out, t.rows)
	return out
}

// FindMatching is the package-level FindMatching over the table's records,
// walked with a cursor.
func (t *Table) FindMatching(columnName, match string) ([]record.Record, error) {
	pred, err := predicate(columnName, match)
	if err != nil {
		return nil, err
	}

	result := make([]record.Record, 0)
	for c := t.NewCursor(); c.Valid(); c.Next() {
		if r := c.Value(); pred(r) {
			result = append(result, r)
		}
	}
	return result, nil
}

func (t *Table) DeleteByID(id uint32) bool {
	var found bool
	t.rows, found = DeleteByID(t.rows, id)
	return found
}
