package service

import "errors"

// Sentinel errors surfaced to controllers. Messages are machine-stable; the
// controllers map them to HTTP statuses and never add internal detail.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrNotFound covers both a missing resource and one owned by another
	// user. Identical presentation for both causes.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidDate is returned when a log date is not a YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrFutureDate is returned when a log date is after today.
	ErrFutureDate = errors.New("date cannot be in the future")

	// ErrDuplicateLog is returned when a log already exists for the habit on
	// that date.
	ErrDuplicateLog = errors.New("a log already exists for this habit on that date")
)
