package shopping

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrItemNotFound = errors.New("shopping item not found")
)
