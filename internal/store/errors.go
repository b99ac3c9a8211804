package store

import "errors"

// Expected, user-recoverable rejections. Handlers translate these into
// redirect query codes; nothing here is a server fault.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrProductNotFound    = errors.New("product not found")
)
