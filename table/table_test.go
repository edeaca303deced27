package table

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recstore/column"
	"recstore/record"
)

// newRecords builds records 1..n with FieldA set by fieldA and FieldB = i.
func newRecords(n int, fieldA func(i int) string) []record.Record {
	records := make([]record.Record, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, record.Record{
			ID:     uint32(i),
			FieldA: fieldA(i),
			FieldB: int64(i),
		})
	}
	return records
}

func ids(records []record.Record) []uint32 {
	out := make([]uint32, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}

func TestDeleteByID_Existing(t *testing.T) {
	records := newRecords(10, strconv.Itoa)

	records, found := DeleteByID(records, 6)
	require.True(t, found)
	assert.Len(t, records, 9)
	assert.Equal(t, []uint32{1, 2, 3, 4, 5, 7, 8, 9, 10}, ids(records))
	for _, r := range records {
		assert.Equal(t, strconv.Itoa(int(r.ID)), r.FieldA)
	}
}

func TestDeleteByID_Missing(t *testing.T) {
	records := newRecords(10, strconv.Itoa)
	want := newRecords(10, strconv.Itoa)

	records, found := DeleteByID(records, 11)
	assert.False(t, found)
	assert.Equal(t, want, records)

	empty, found := DeleteByID(nil, 1)
	assert.False(t, found)
	assert.Empty(t, empty)
}

func TestDeleteByID_OnlyFirstDuplicate(t *testing.T) {
	records := []record.Record{
		{ID: 1, FieldA: "first"},
		{ID: 2},
		{ID: 1, FieldA: "second"},
	}

	records, found := DeleteByID(records, 1)
	require.True(t, found)
	require.Len(t, records, 2)
	assert.Equal(t, uint32(2), records[0].ID)
	assert.Equal(t, "second", records[1].FieldA)
}

func TestFindMatching_ByString(t *testing.T) {
	records := newRecords(100, func(i int) string { return strconv.Itoa(i % 10) })

	result, err := FindMatching(records, "field_a", "5")
	require.NoError(t, err)
	require.Len(t, result, 10)
	for i, r := range result {
		assert.Equal(t, uint32(10*i+5), r.ID)
	}
}

func TestFindMatching_MissingByInt(t *testing.T) {
	records := newRecords(100, func(i int) string { return strconv.Itoa(i % 10) })

	result, err := FindMatching(records, "field_b", "101")
	require.NoError(t, err)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFindMatching_ExactNumeric(t *testing.T) {
	records := newRecords(100, strconv.Itoa)

	result, err := FindMatching(records, "id", "42")
	require.NoError(t, err)
	assert.Equal(t, []uint32{42}, ids(result))

	result, err = FindMatching(records, "field_b", "7")
	require.NoError(t, err)
	assert.Equal(t, []uint32{7}, ids(result))
}

func TestFindMatching_EmptyMatchesAllText(t *testing.T) {
	records := newRecords(25, strconv.Itoa)

	for _, name := range []string{"field_a", "field_c"} {
		result, err := FindMatching(records, name, "")
		require.NoError(t, err)
		assert.Equal(t, records, result, name)
	}
}

func TestFindMatching_UnknownColumn(t *testing.T) {
	records := newRecords(10, strconv.Itoa)

	result, err := FindMatching(records, "nonexistent_column", "xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, column.ErrUnknownColumn))
	assert.Nil(t, result)
}

func TestFindMatching_InvalidMatchValue(t *testing.T) {
	records := newRecords(10, strconv.Itoa)

	for _, name := range []string{"id", "field_b"} {
		result, err := FindMatching(records, name, "xyz")
		require.Error(t, err)
		assert.True(t, errors.Is(err, column.ErrInvalidMatchValue), name)
		assert.Nil(t, result)
	}
}

func TestFindMatching_Snapshot(t *testing.T) {
	records := newRecords(10, strconv.Itoa)

	result, err := FindMatching(records, "field_a", "1")
	require.NoError(t, err)
	require.Equal(t, []uint32{1, 10}, ids(result))

	result[0].FieldA = "changed"
	assert.Equal(t, "1", records[0].FieldA)

	records[9].FieldA = "also changed"
	assert.Equal(t, "10", result[1].FieldA)
}

func TestTable(t *testing.T) {
	seed := newRecords(3, strconv.Itoa)
	tbl := New(seed...)
	seed[0].FieldA = "not shared"

	tbl.Insert(record.Record{ID: 4, FieldA: "4", FieldB: 4})
	assert.Equal(t, 4, tbl.Len())
	assert.Equal(t, "1", tbl.Rows()[0].FieldA)

	result, err := tbl.FindMatching("field_b", "4")
	require.NoError(t, err)
	assert.Equal(t, []uint32{4}, ids(result))

	assert.True(t, tbl.DeleteByID(2))
	assert.False(t, tbl.DeleteByID(2))
	assert.Equal(t, []uint32{1, 3, 4}, ids(tbl.Rows()))

	_, err = tbl.FindMatching("field_x", "")
	assert.ErrorIs(t, err, column.ErrUnknownColumn)
}

func TestTableFindMatching_Stable(t *testing.T) {
	tbl := New(newRecords(100, func(i int) string { return strconv.Itoa(i % 10) })...)
	require.True(t, tbl.DeleteByID(15))

	result, err := tbl.FindMatching("field_a", "5")
	require.NoError(t, err)
	assert.Equal(t, []uint32{5, 25, 35, 45, 55, 65, 75, 85, 95}, ids(result))

	result[0].FieldA = "changed"
	assert.Equal(t, "5", tbl.Rows()[4].FieldA)

	all, err := tbl.FindMatching("field_c", "")
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows(), all)

	result, err = tbl.FindMatching("field_b", "x")
	assert.ErrorIs(t, err, column.ErrInvalidMatchValue)
	assert.Nil(t, result)
}

func TestCursor(t *testing.T) {
	tbl := New(newRecords(3, strconv.Itoa)...)

	var got []uint32
	for c := tbl.NewCursor(); c.Valid(); c.Next() {
		got = append(got, c.Value().ID)
	}
	assert.Equal(t, []uint32{1, 2, 3}, got)

	empty := New()
	c := empty.NewCursor()
	assert.False(t, c.Valid())
	c.Next()
	assert.False(t, c.Valid())
}

func TestPopulateDummy(t *testing.T) {
	data := PopulateDummy("testdata", 1000)
	require.Len(t, data, 1000)
	assert.Equal(t, record.Record{ID: 123, FieldA: "testdata123", FieldB: 23, FieldC: "123testdata"}, data[123])

	data, found := DeleteByID(data, 123)
	require.True(t, found)
	empty, err := FindMatching(data, "id", "123")
	require.NoError(t, err)
	assert.Empty(t, empty)

	filtered, err := FindMatching(data, "field_a", "testdata500")
	require.NoError(t, err)
	assert.Len(t, filtered, 1)

	filtered, err = FindMatching(data, "field_b", "24")
	require.NoError(t, err)
	assert.Len(t, filtered, 10)
}

func BenchmarkFindMatching(b *testing.B) {
	data := PopulateDummy("testdata", 100000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := FindMatching(data, "field_a", "testdata500"); err != nil {
			b.Fatal(err)
		}
	}
}
