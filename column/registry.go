package column

import (
	"fmt"

	"recstore/record"
)

// Registry maps column names to their descriptors. It is built once and only
// read afterwards.
type Registry struct {
	schema Schema
	byName map[string]Column
}

func NewRegistry(schema Schema) (*Registry, error) {
	byName := make(map[string]Column, len(schema))
	for _, col := range schema {
		if col.build == nil || col.format == nil {
			return nil, fmt.Errorf("column %q has no comparator", col.Name)
		}
		if _, dup := byName[col.Name]; dup {
			return nil, fmt.Errorf("column %q declared twice", col.Name)
		}
		byName[col.Name] = col
	}
	return &Registry{schema: schema, byName: byName}, nil
}

// Resolve looks up a column by its exact name.
func (r *Registry) Resolve(name string) (Column, error) {
	col, ok := r.byName[name]
	if !ok {
		return Column{}, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return col, nil
}

// Columns returns the descriptors in declaration order.
func (r *Registry) Columns() Schema {
	out := make(Schema, len(r.schema))
	copy(out, r.schema)
	return out
}

// Names returns the column names in declaration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.schema))
	for i, col := range r.schema {
		names[i] = col.Name
	}
	return names
}

// RecordSchema is the fixed set of columns of record.Record.
func RecordSchema() Schema {
	return Schema{
		numericColumn("id", ColumnTypeUint, func(r record.Record) uint32 { return r.ID }, parseUint32),
		textColumn("field_a", func(r record.Record) string { return r.FieldA }),
		numericColumn("field_b", ColumnTypeInt, func(r record.Record) int64 { return r.FieldB }, parseInt64),
		textColumn("field_c", func(r record.Record) string { return r.FieldC }),
	}
}

// Records is the registry used by the table package.
var Records = mustRegistry(RecordSchema())

func mustRegistry(schema Schema) *Registry {
	reg, err := NewRegistry(schema)
	if err != nil {
		panic(err)
	}
	return reg
}
