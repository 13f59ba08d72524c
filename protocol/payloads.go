package protocol

import (
	"fmt"
)

// SlotMarker returns the marker byte identifying a template slot in commit
// and delete payloads.
func SlotMarker(slot byte) byte {
	return 0xF0 | (slot + 5)
}

// EnrollPayload builds the 4-byte payload of one enroll sampling step:
// the target slot, the total number of samples and how many succeeded so
// far. The trailing byte is always zero; its meaning is unknown.
func EnrollPayload(slot, total, done byte) []byte {
	return []byte{slot, total, done, 0}
}

// CommitPayload builds the 69-byte commit payload persisting an enrolled
// template: the slot marker followed by user data, zero-padded. The user
// data would be truncated silently by the device otherwise, so oversize
// data is rejected here.
func CommitPayload(slot byte, userData []byte) ([]byte, error) {
	return slotPayload(slot, userData)
}

// DeletePayload builds the 69-byte delete payload for a template slot. The
// record tail is the finger info record minus its two leading bytes, echoed
// back verbatim; the sensor rejects deletions without it.
func DeletePayload(slot byte, recordTail []byte) ([]byte, error) {
	return slotPayload(slot, recordTail)
}

func slotPayload(slot byte, data []byte) ([]byte, error) {
	if int(slot) >= MaxFingers {
		return nil, fmt.Errorf("finger slot %d out of range 0-%d", slot, MaxFingers-1)
	}
	if len(data) > MaxUserDataSize {
		return nil, fmt.Errorf("payload data too long: %d bytes, maximum is %d", len(data), MaxUserDataSize)
	}

	payload := make([]byte, CommitPayloadSize)
	payload[0] = SlotMarker(slot)
	copy(payload[1:], data)
	return payload, nil
}
