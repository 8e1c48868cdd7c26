package repository

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicate          = errors.New("duplicate")
	ErrInUse              = errors.New("referenced by other records")
	ErrArtworkUnavailable = errors.New("artwork unavailable")
)
