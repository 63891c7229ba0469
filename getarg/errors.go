package getarg

import (
	"errors"
	"strconv"
)

// ErrorType categorizes why a typed lookup could not produce a value.
// Accessors collapse these into their documented fallbacks; only LookupInt
// hands them to the caller.
type ErrorType string

const (
	ErrorTypeAbsent     ErrorType = "absent"
	ErrorTypeInvalidInt ErrorType = "invalid_int"
)

// ValueError reports a failed typed lookup.
type ValueError struct {
	Type  ErrorType
	Name  string
	Value string
}

func (e *ValueError) Error() string {
	switch e.Type {
	case ErrorTypeAbsent:
		return "flag not set: -" + e.Name
	case ErrorTypeInvalidInt:
		return "invalid integer value for -" + e.Name + ": " + strconv.Quote(e.Value)
	default:
		return "flag -" + e.Name + ": " + string(e.Type)
	}
}

// IsAbsent reports whether err is a ValueError for a flag that was not supplied.
func IsAbsent(err error) bool {
	var ve *ValueError
	return errors.As(err, &ve) && ve.Type == ErrorTypeAbsent
}
