package protocol

import "fmt"

// statusText holds the meanings of the known error status bytes. The table
// was assembled from observed device behavior, not a datasheet.
var statusText = map[byte]string{
	StatusMoveDown:     "Move slightly downwards",
	StatusMoveRight:    "Move slightly to the right",
	StatusMoveUp:       "Move slightly upwards",
	StatusMoveLeft:     "Move slightly to the left",
	StatusSensorDirty:  "Sensor is dirty or wet",
	StatusNotEnrolled:  "Finger not enrolled",
	StatusAreaTooSmall: "Finger area not enough",
	StatusMaxFingers:   "Maximum number of enrolled fingers reached",
}

// IsStatusError reports whether a status byte indicates an error. Any byte
// with a zero high nibble counts as success. This rule is eyeballed from
// observed replies; keep it exactly as is rather than tightening it.
func IsStatusError(code byte) bool {
	return code&0xF0 != 0
}

// StatusText returns the human-readable meaning of an error status byte,
// or the empty string when the byte does not indicate an error.
func StatusText(code byte) string {
	if !IsStatusError(code) {
		return ""
	}
	if text, ok := statusText[code]; ok {
		return text
	}
	return fmt.Sprintf("Unknown error 0x%02x", code)
}

// IsHint reports whether a status byte is a finger placement hint
// (0x41-0x44) rather than a true fault.
func IsHint(code byte) bool {
	return code >= StatusMoveDown && code <= StatusMoveLeft
}
