package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("invalid input")
)

// ErrCacheMiss is returned by caches when a key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")
