package table

import (
	"strconv"

	"recstore/record"
)

// PopulateDummy builds n records where record i is
// {i, prefix+"i", i%100, "i"+prefix}.
func PopulateDummy(prefix string, n uint32) []record.Record {
	data := make([]record.Record, 0, n)
	for i := uint32(0); i < n; i++ {
		s := strconv.FormatUint(uint64(i), 10)
		data = append(data, record.Record{
			ID:     i,
			FieldA: prefix + s,
			FieldB: int64(i % 100),
			FieldC: s + prefix,
		})
	}
	return data
}
