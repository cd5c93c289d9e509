package engine

import (
	"errors"
	"strings"
)

// Messages shown to the user. Handlers render them verbatim.
const (
	MsgAllFieldsRequired  = "All fields are required."
	MsgPasswordTooLong    = "Password must be at most 72 bytes."
	MsgUsernameTaken      = "Username already taken."
	MsgInvalidCredentials = "Invalid username or password."
	MsgInvalidRole        = "Invalid role."
	MsgAccountCreated     = "Account created. Please log in."

	MsgTitleRequired    = "Title is required."
	MsgDateRequired     = "Date is required."
	MsgDateInvalid      = "Date is invalid."
	MsgDateInPast       = "Date must be in the future."
	MsgLocationRequired = "Location is required."
)

var (
	// ErrNotFound indicates that the requested gig or user does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates that the acting user may not modify the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials is returned for an unknown username and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUsernameTaken indicates that signup could not create the user.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrSessionNotSaved indicates that signup stored the user but could not log them in.
	ErrSessionNotSaved = errors.New("account created but session not saved")
)

// ValidationError lists every problem found in user input.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, " ")
}

func newValidationError(problems ...string) *ValidationError {
	return &ValidationError{Problems: problems}
}
