package table

import "recstore/record"

// Cursor walks a table's records in storage order. A cursor is invalidated
// by any mutation of the table it was created from.
type Cursor struct {
	table *Table
	idx   int
}

func (t *Table) NewCursor() *Cursor {
	return &Cursor{table: t}
}

// Valid returns true if the cursor points at a record.
func (c *Cursor) Valid() bool { return c.idx < len(c.table.rows) }

// Value returns the record under the cursor.
func (c *Cursor) Value() record.Record { return c.table.rows[c.idx] }

// Next advances to the following record.
func (c *Cursor) Next() {
	if c.Valid() {
		c.idx++
	}
}
