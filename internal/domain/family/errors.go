package family

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrFamilyNotFound = errors.New("family not found")
	ErrMemberNotFound = errors.New("member not found")
	ErrNotMember      = errors.New("not a member of this family")
	ErrAlreadyMember  = errors.New("already a member of this family")
)
