package protocol

import (
	"bytes"
	"errors"
	"testing"
)

func TestCommandTable(t *testing.T) {
	for name, cmd := range Commands {
		if len(cmd.Opcode) == 0 {
			t.Errorf("%s: empty opcode", name)
		}
		if len(cmd.Opcode) > cmd.OutLen {
			t.Errorf("%s: opcode longer (%d) than expected frame (%d)", name, len(cmd.Opcode), cmd.OutLen)
		}
		if cmd.EpOut != 1 {
			t.Errorf("%s: EpOut = %d, all commands go out via endpoint 1", name, cmd.EpOut)
		}
		if cmd.EpIn != 3 && cmd.EpIn != 4 {
			t.Errorf("%s: EpIn = %d, want 3 or 4", name, cmd.EpIn)
		}
	}

	// Commands without payload must already be full-size.
	for _, name := range []string{"fw_ver", "sensor_size", "verify", "enrolled_num", "abort", "after_enroll"} {
		cmd := Commands[name]
		if len(cmd.Opcode) != cmd.OutLen {
			t.Errorf("%s: payload-less command with opcode %d != OutLen %d", name, len(cmd.Opcode), cmd.OutLen)
		}
	}
}

func TestLookup(t *testing.T) {
	cmd, err := Lookup("verify")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(cmd.Opcode, []byte{0x40, 0xFF, 0x03}) {
		t.Errorf("verify opcode = % x", cmd.Opcode)
	}

	_, err = Lookup("self_destruct")
	var unknown *UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownCommandError", err)
	}
	if unknown.Name != "self_destruct" {
		t.Errorf("Name = %q", unknown.Name)
	}
}

func TestFrame(t *testing.T) {
	cmd := Commands["finger_info"]
	frame := cmd.Frame([]byte{0x03})
	want := []byte{0x40, 0xFF, 0x12, 0x03}
	if !bytes.Equal(frame, want) {
		t.Errorf("Frame = % x, want % x", frame, want)
	}
	if len(frame) != cmd.OutLen {
		t.Errorf("frame length = %d, want %d", len(frame), cmd.OutLen)
	}
}

func TestEnrollPayload(t *testing.T) {
	tests := []struct {
		name              string
		slot, total, done byte
	}{
		{"first sample", 0, 8, 0},
		{"mid enrollment", 3, 8, 5},
		{"last sample", 9, 8, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := EnrollPayload(tt.slot, tt.total, tt.done)
			if len(p) != 4 {
				t.Fatalf("payload length = %d, want 4", len(p))
			}
			want := []byte{tt.slot, tt.total, tt.done, 0}
			if !bytes.Equal(p, want) {
				t.Errorf("payload = % x, want % x", p, want)
			}
		})
	}
}

func TestCommitPayload(t *testing.T) {
	tests := []struct {
		name     string
		slot     byte
		userData []byte
		wantErr  bool
	}{
		{"empty user data", 0, nil, false},
		{"short user data", 2, []byte("alice"), false},
		{"maximum user data", 9, bytes.Repeat([]byte{0xAB}, MaxUserDataSize), false},
		{"oversize user data", 0, bytes.Repeat([]byte{0xAB}, MaxUserDataSize+1), true},
		{"slot out of range", 10, []byte("bob"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := CommitPayload(tt.slot, tt.userData)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(p) != CommitPayloadSize {
				t.Fatalf("payload length = %d, want %d", len(p), CommitPayloadSize)
			}
			if p[0] != SlotMarker(tt.slot) {
				t.Errorf("marker = 0x%02X, want 0x%02X", p[0], SlotMarker(tt.slot))
			}
			if !bytes.Equal(p[1:1+len(tt.userData)], tt.userData) {
				t.Errorf("user data not embedded: % x", p[1:])
			}
			for i := 1 + len(tt.userData); i < len(p); i++ {
				if p[i] != 0 {
					t.Errorf("padding byte %d = 0x%02X, want 0x00", i, p[i])
				}
			}
		})
	}
}

func TestDeletePayload(t *testing.T) {
	tail := bytes.Repeat([]byte{0x5A}, 62)
	p, err := DeletePayload(7, tail)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p) != CommitPayloadSize {
		t.Fatalf("payload length = %d, want %d", len(p), CommitPayloadSize)
	}
	if p[0] != 0xF0|(7+5) {
		t.Errorf("marker = 0x%02X, want 0x%02X", p[0], 0xF0|(7+5))
	}
	if !bytes.Equal(p[1:63], tail) {
		t.Errorf("record tail not echoed back")
	}
}

func TestSlotMarker(t *testing.T) {
	if got := SlotMarker(0); got != 0xF5 {
		t.Errorf("SlotMarker(0) = 0x%02X, want 0xF5", got)
	}
	if got := SlotMarker(9); got != 0xFE {
		t.Errorf("SlotMarker(9) = 0x%02X, want 0xFE", got)
	}
}
