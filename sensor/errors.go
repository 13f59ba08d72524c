package sensor

import "fmt"

// MaxFingersError indicates that enrollment failed because every template
// slot on the sensor is occupied. It is fatal to the enrollment; free a
// slot first.
type MaxFingersError struct{}

func (e *MaxFingersError) Error() string {
	return "maximum number of enrolled fingers reached"
}

// RetryLimitError indicates that a retry budget set via WithRetryLimit ran
// out before the sensor reported success.
type RetryLimitError struct {
	// Op is the workflow step that gave up
	Op string

	// Attempts is the number of failed attempts
	Attempts int
}

func (e *RetryLimitError) Error() string {
	return fmt.Sprintf("%s: giving up after %d attempts", e.Op, e.Attempts)
}

// ShortReplyError indicates a reply too short to carry a status byte, so
// the workflow cannot even tell what went wrong.
type ShortReplyError struct {
	Op  string
	Len int
}

func (e *ShortReplyError) Error() string {
	return fmt.Sprintf("%s: reply of %d bytes is too short to carry a status", e.Op, e.Len)
}
