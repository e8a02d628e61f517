package repo

import "errors"

const (
	uniqueViolationCode = "23505"
)

var (
	ErrNotFound   = errors.New("resource not found")
	ErrLikeExists = errors.New("like already registered")
)
