package service

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure classes callers are expected to branch
// on. Anything else bubbling out of a service is a storage failure.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateUser      = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownFood        = errors.New("unknown food")
	ErrUserNotFound       = errors.New("user not found")
)

// IsValidationErr reports whether err is a bad-input failure.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsAuthErr reports whether err is a credential or duplicate-user failure.
func IsAuthErr(err error) bool {
	return errors.Is(err, ErrDuplicateUser) || errors.Is(err, ErrInvalidCredentials)
}

// IsNotFoundErr reports whether err is an unknown-food or unknown-user
// failure.
func IsNotFoundErr(err error) bool {
	return errors.Is(err, ErrUnknownFood) || errors.Is(err, ErrUserNotFound)
}

// IsStorageErr reports whether err is none of the recoverable classes and
// should terminate the session.
func IsStorageErr(err error) bool {
	return err != nil && !IsValidationErr(err) && !IsAuthErr(err) && !IsNotFoundErr(err)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
