// Package protocol implements the wire protocol of the ELAN 04F3:0C4C
// match-on-chip fingerprint reader.
//
// The protocol is undocumented; everything in this package was recovered by
// observing USB traffic of the Windows driver. The sensor stores enrolled
// templates and performs all matching on-chip, so the host only ever sees
// finger slot numbers and status bytes (the one exception is the raw image
// capture path, which streams 16-bit pixel data).
//
// # Protocol Overview
//
// Commands are short opcode-prefixed frames written to a bulk OUT endpoint,
// answered with a fixed-size reply on a command-specific bulk IN endpoint:
//
//	Command: [OPCODE...][PAYLOAD...]       -> endpoint 1
//	Reply:   [B0][STATUS][DATA...]         <- endpoint 3 or 4
//
// Byte 1 of almost every reply is a status byte. A status byte with a zero
// high nibble means success; for several commands it doubles as the result
// value (matched finger slot, enrolled count).
//
// # Command Table
//
// Commands registers the known command set with opcode bytes, expected
// frame lengths and endpoints. Lengths are expectations, not guarantees:
// the device tolerates some drift and so does this package. Look up an
// entry by name and build the frame yourself, or go through the sensor
// package which does both:
//
//	cmd, ok := protocol.Commands["verify"]
//
// # Status Bytes
//
// Use IsStatusError and StatusText to interpret reply status bytes:
//
//	if protocol.IsStatusError(resp[1]) {
//	    return &protocol.StatusError{Op: "verify", Code: resp[1]}
//	}
//
// Codes 0x41-0x44 are finger placement hints ("move slightly ..."), not
// faults; they still read as errors here because the caller is expected to
// retry the placement.
//
// # Payload Builders
//
// EnrollPayload, CommitPayload and DeletePayload build the payloads of the
// stateful enrollment and deletion commands. Commit and delete frames carry
// a slot marker byte (0xF0 | (slot + 5)) followed by data zero-padded to 69
// bytes; the builders enforce that layout.
package protocol
