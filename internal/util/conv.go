package util

import (
	"strconv"
)

// ParseUint mengubah string parameter path/query menjadi uint.
func ParseUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
