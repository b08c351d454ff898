package store

import "errors"

var (
	ErrEmptyResponse = errors.New("empty response")
	ErrNoToken       = errors.New("no token returned")
)

const (
	ErrorLoggingIn         = "unable to log in"
	ErrorValidatingSession = "unable to validate session"
	ErrorDecodingResponse  = "unable to decode response"
)
