package services

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers get one generic failure so login does not leak which half
	// was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken rejects signup with an already-registered email.
	ErrEmailTaken = errors.New("email already registered")

	// ErrNoRegistrants means a registrant export was requested for an
	// event nobody signed up for.
	ErrNoRegistrants = errors.New("no registrations for event")
)
