package util

import (
	"bytes"

	"github.com/oklog/ulid/v2"
)

// RowULID derives a ULID for a row that has no identifier of its own. The
// entropy comes from the row's content and position, so the same source
// yields the same IDs on every load.
func RowULID(position int, cells []string) string {
	sum := HashCells(position, cells)
	return ulid.MustNew(0, bytes.NewReader(sum[:])).String()
}

// ValidateULID checks if a string is a valid ULID.
func ValidateULID(s string) bool {
	_, err := ulid.Parse(s)
	return err == nil
}
