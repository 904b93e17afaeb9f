package laundry

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrAdviceUnavailable = errors.New("laundry advice unavailable")
)
