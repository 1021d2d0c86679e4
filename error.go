package webfonts

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic and map well to failure modes of the font
// discovery pipeline. Per-URL and per-rule failures carry codes so callers
// can decide whether to skip, retry, or abort.
const (
	ECYCLE       = "cycle"       // @import target already visited
	EDEPTH       = "depth"       // @import recursion bound reached
	EINTERNAL    = "internal"    // internal error
	EINVALID     = "invalid"     // validation failed
	ENOTFOUND    = "not_found"   // entity does not exist
	EPARSE       = "parse"       // structured CSS parse failed
	EUNAVAILABLE = "unavailable" // fetch or external collaborator failed
	EUNRESOLVED  = "unresolved"  // no fetchable URL available
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	// Machine-readable error code.
	Code string

	// Human-readable message.
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("webfonts error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
