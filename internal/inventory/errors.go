package inventory

import "errors"

var (
	// ErrNegativePrice rejects book construction with a price below zero.
	ErrNegativePrice = errors.New("price must not be negative")
)
