package record

// Record is a single fixed-shape row. ID is the intended unique key but
// nothing enforces that.
type Record struct {
	ID     uint32 `json:"id"`
	FieldA string `json:"field_a"`
	FieldB int64  `json:"field_b"`
	FieldC string `json:"field_c"`
}
