package errcode

// Code is a stable, bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK Code = "ok"

	// Command protocol. None of these are fatal: the router swallows the
	// line and the caller may surface the code as a diagnostic.
	InvalidDuration Code = "invalid_duration"
	UnknownCommand  Code = "unknown_command"

	// Display protocol.
	InvalidBrightness Code = "invalid_brightness"
	DisplayOff        Code = "display_off"

	Error Code = "error" // generic fallback
)

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}
