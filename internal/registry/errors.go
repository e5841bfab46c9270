package registry

import "errors"

var (
	ErrValidation  = errors.New("invalid input")
	ErrConflict    = errors.New("slug already taken")
	ErrNotFound    = errors.New("user not found")
	ErrCredentials = errors.New("wrong password")
	ErrPersistence = errors.New("document write failed")
	ErrProtected   = errors.New("account is protected")
)
