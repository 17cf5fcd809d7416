package service

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrNotFound           = errors.New("record not found")

	// ErrNoRecords is returned by list calls whose page came back empty.
	ErrNoRecords = errors.New("no records on this page")

	ErrMediaUpload = errors.New("media upload failed")
)
