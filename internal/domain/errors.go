package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRemote              = errors.New("remote request failed")
	ErrAuthRequired        = errors.New("login required")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrCredentialsNotFound = errors.New("stored credentials not found")
	ErrSecretNotFound      = errors.New("secret not found")
	ErrStoryNotFound       = errors.New("story not found")
)

// RemoteError describes a failed gateway call. It matches ErrRemote, and
// ErrInvalidCredentials as well when Rejected is set.
type RemoteError struct {
	Op       string
	Status   int
	Message  string
	Rejected bool
	Err      error
}

func (e *RemoteError) Error() string {
	msg := e.Op
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Message != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Message)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func (e *RemoteError) Is(target error) bool {
	switch target {
	case ErrRemote:
		return true
	case ErrInvalidCredentials:
		return e.Rejected
	default:
		return false
	}
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
