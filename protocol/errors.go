package protocol

import "fmt"

// StatusError represents an error status byte returned by the sensor.
type StatusError struct {
	// Op is the operation that failed
	Op string

	// Code is the status byte from the reply
	Code byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed: %s (0x%02X)", e.Op, StatusText(e.Code), e.Code)
}

// UnknownCommandError indicates a lookup for a command name that is not in
// the command table.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}
