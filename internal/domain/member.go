package domain

import "errors"

var ErrMemberNotFound = errors.New("member not found")

type Member struct {
	ID    int64
	Name  string
	Email string
}
