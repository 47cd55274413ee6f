package errors

import (
	"errors"
)

// Exception is a business-rule failure that the CLI reports to the user
// instead of aborting. Two exceptions match under errors.Is when their
// codes are equal, so sentinels can be compared against values that carry
// more specific messages.
type Exception struct {
	Code    string
	Message string
	Hint    string
}

func (e *Exception) Error() string {
	return e.Message
}

func (e *Exception) Is(target error) bool {
	t, ok := target.(*Exception)
	return ok && t.Code == e.Code
}

func (e *Exception) withMessage(msg string) *Exception {
	return &Exception{Code: e.Code, Message: msg, Hint: e.Hint}
}

// IsException reports whether err is, or wraps, an *Exception.
func IsException(err error) bool {
	var appErr *Exception
	return errors.As(err, &appErr)
}

// Describe renders err for the user, including the hint line if any.
func Describe(err error) string {
	var appErr *Exception
	if !errors.As(err, &appErr) {
		return err.Error()
	}
	if appErr.Hint == "" {
		return appErr.Message
	}
	return appErr.Message + "\nHint: " + appErr.Hint
}
