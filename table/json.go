package table

import (
	"fmt"
	"io"
	"sort"

	"github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"

	"recstore/record"
)

// LoadJSON reads a JSON array of records. Unknown keys are rejected so that a
// misspelled field does not silently load as its zero value.
func LoadJSON(r io.Reader) ([]record.Record, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var records []record.Record
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("LoadJSON: %w", err)
	}
	if records == nil {
		records = []record.Record{}
	}
	return records, nil
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, records []record.Record) error {
	if records == nil {
		records = []record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("WriteJSON: %w", err)
	}
	return nil
}

// DuplicateIDs returns one error per id that occurs more than once, or nil.
// The store never enforces uniqueness; this exists so loaders can warn.
func DuplicateIDs(records []record.Record) error {
	counts := make(map[uint32]int, len(records))
	for _, r := range records {
		counts[r.ID]++
	}

	var dups []uint32
	for id, n := range counts {
		if n > 1 {
			dups = append(dups, id)
		}
	}
	sort.Slice(dups, func(i, j int) bool { return dups[i] < dups[j] })

	var errs error
	for _, id := range dups {
		errs = multierror.Append(errs, fmt.Errorf("id %d occurs %d times; only the first is reachable by delete", id, counts[id]))
	}
	return errs
}
