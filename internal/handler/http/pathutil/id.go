// Package pathutil parses path parameters shared by the resource handlers.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID is returned when a path's id segment is not a positive integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID parses the id wildcard value of a route pattern. IDs are positive
// integers; anything else is ErrInvalidID.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
