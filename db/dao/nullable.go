package dao

import "database/sql"

type NullInt64 struct {
	sql.NullInt64
}

// AsInt if parent is nil, returns -1
func (ni *NullInt64) AsInt() int64 {
	if !ni.NullInt64.Valid {
		return -1
	}
	return ni.NullInt64.Int64
}

// Ptr returns the value as a pointer, nil when not set.
func (ni *NullInt64) Ptr() *int64 {
	if !ni.NullInt64.Valid {
		return nil
	}
	val := ni.NullInt64.Int64
	return &val
}

func NullInt64From(val *int64) NullInt64 {
	if val == nil {
		return NullInt64{}
	}
	return NullInt64{sql.NullInt64{Int64: *val, Valid: true}}
}
