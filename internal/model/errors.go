package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")

	// ErrLoginRequired means the request carried no valid session and the
	// caller should be sent to the sign-in flow.
	ErrLoginRequired = errors.New("login required")

	// ErrDisabled means a still-valid session belongs to a disabled account.
	// The session is gone by the time this is returned; the caller must
	// re-authenticate, not proceed as anonymous.
	ErrDisabled = errors.New("account disabled")

	ErrForbidden         = errors.New("forbidden")
	ErrUnavailable       = errors.New("not available")
	ErrInvalidTransition = errors.New("invalid status transition")
)

func NewError(model string, err error) error {
	return fmt.Errorf("%s: %w", strings.ToLower(model), err)
}
