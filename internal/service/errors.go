package service

import "errors"

// Client-facing failures. Anything else returned by a service is a backend fault.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrMissingName        = errors.New("missing name")
	ErrMissingType        = errors.New("missing type")
	ErrMissingData        = errors.New("missing data")
	ErrInvalidData        = errors.New("data is not valid base64")
	ErrInvalidBody        = errors.New("request body is not valid JSON")
	ErrParentNotFound     = errors.New("parent not found")
	ErrParentNotAFolder   = errors.New("parent is not a folder")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("not found")
	ErrFolderHasNoContent = errors.New("a folder doesn't have content")
	ErrMissingEmail       = errors.New("missing email")
	ErrMissingPassword    = errors.New("missing password")
	ErrUserExists         = errors.New("user already exists")
)
