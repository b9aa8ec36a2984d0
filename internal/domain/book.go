package domain

import "errors"

var ErrBookNotFound = errors.New("book not found")

// ErrConstraint is returned when the store rejects a write due to a
// uniqueness or integrity rule.
var ErrConstraint = errors.New("constraint violation")

type Book struct {
	ID     int64
	Title  string
	Author string
	Year   int
}
