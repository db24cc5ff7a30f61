package util

import (
	"crypto/sha256"
	"strconv"
)

// HashCells computes the SHA256 digest of a row's cell values and its
// position in the source. Cells are length-prefixed so ["ab", "c"] and
// ["a", "bc"] hash differently.
func HashCells(position int, cells []string) [sha256.Size]byte {
	h := sha256.New()
	h.Write([]byte(strconv.Itoa(position)))
	h.Write([]byte{0})
	for _, c := range cells {
		h.Write([]byte(strconv.Itoa(len(c))))
		h.Write([]byte{':'})
		h.Write([]byte(c))
	}
	var sum [sha256.Size]byte
	copy(sum[:], h.Sum(nil))
	return sum
}
