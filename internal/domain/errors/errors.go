package errors

import "errors"

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrNotFound            = errors.New("not found")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsMissing  = errors.New("credentials missing")
	ErrCredentialsTooShort = errors.New("credentials too short")
	ErrEntryFieldsMissing  = errors.New("entry fields missing")
	ErrEntryTooLong        = errors.New("entry too long")
)
