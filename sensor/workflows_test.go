package sensor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/vogtinator/go-elanfp/protocol"
)

func queueEnrollHappyPath(transport *MockTransport, slot byte, sampleReplies [][]byte) {
	// enrolled_num: the count doubles as the new slot.
	transport.AddResponse(3, []byte{0x40, slot})
	// Pre-check: first a finger the sensor already knows, then an unknown one.
	transport.AddResponse(4, []byte{0x40, 0x01})
	transport.AddResponse(4, []byte{0x40, protocol.StatusNotEnrolled})
	// Sampling rounds.
	for _, reply := range sampleReplies {
		transport.AddResponse(4, reply)
	}
	// after_enroll and commit.
	transport.AddResponse(3, []byte{0x40, 0x00, 0x00})
	transport.AddResponse(3, []byte{0x40, 0x00})
}

func TestEnroll(t *testing.T) {
	transport := NewMockTransport()

	// One failed sampling round in the middle; it must be retried at the
	// same sample index.
	samples := [][]byte{
		{0x40, 0x00}, {0x40, 0x00}, {0x40, 0x00},
		{0x40, protocol.StatusAreaTooSmall},
		{0x40, 0x00}, {0x40, 0x00}, {0x40, 0x00}, {0x40, 0x00}, {0x40, 0x00},
	}
	queueEnrollHappyPath(transport, 2, samples)

	r := New(transport)
	slot, err := r.Enroll([]byte("alice"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if slot != 2 {
		t.Errorf("slot = %d, want 2", slot)
	}

	// Nine enroll frames: eight successes plus one retry, each 7 bytes with
	// payload {slot, total, done, 0}.
	frames := transport.framesWithOpcode([]byte{0x40, 0xFF, 0x01})
	if len(frames) != 9 {
		t.Fatalf("enroll frames = %d, want 9", len(frames))
	}
	wantDone := []byte{0, 1, 2, 3, 3, 4, 5, 6, 7}
	for i, frame := range frames {
		if len(frame) != 7 {
			t.Fatalf("enroll frame %d has %d bytes, want 7", i, len(frame))
		}
		if frame[3] != 2 || frame[4] != EnrollSamples || frame[5] != wantDone[i] || frame[6] != 0 {
			t.Errorf("enroll frame %d payload = % x, want slot 2 total 8 done %d", i, frame[3:], wantDone[i])
		}
	}

	// Exactly one commit frame: 72 bytes, marker + user data + zero padding.
	commits := transport.framesWithOpcode([]byte{0x40, 0xFF, 0x11})
	if len(commits) != 1 {
		t.Fatalf("commit frames = %d, want 1", len(commits))
	}
	commit := commits[0]
	if len(commit) != 72 {
		t.Errorf("commit frame = %d bytes, want 72", len(commit))
	}
	if commit[3] != protocol.SlotMarker(2) {
		t.Errorf("commit marker = 0x%02X, want 0x%02X", commit[3], protocol.SlotMarker(2))
	}
	if !bytes.Equal(commit[4:9], []byte("alice")) {
		t.Errorf("commit user data = % x, want 'alice'", commit[4:9])
	}
	for i := 9; i < len(commit); i++ {
		if commit[i] != 0 {
			t.Errorf("commit padding byte %d = 0x%02X, want 0x00", i, commit[i])
		}
	}
}

func TestEnrollMaxFingers(t *testing.T) {
	transport := NewMockTransport()
	transport.AddResponse(3, []byte{0x40, 0x09})
	transport.AddResponse(4, []byte{0x40, protocol.StatusNotEnrolled})
	// First sampling round reports a full sensor; enrollment must abort
	// immediately without further sampling or a commit.
	transport.AddResponse(4, []byte{0x40, protocol.StatusMaxFingers})

	r := New(transport)
	_, err := r.Enroll(nil)

	var maxErr *MaxFingersError
	if !errors.As(err, &maxErr) {
		t.Fatalf("error = %v, want MaxFingersError", err)
	}
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x01})); got != 1 {
		t.Errorf("enroll frames = %d, want 1", got)
	}
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x11})); got != 0 {
		t.Errorf("commit frames = %d, want 0", got)
	}
}

func TestEnrollUserDataTooLong(t *testing.T) {
	transport := NewMockTransport()
	r := New(transport)

	_, err := r.Enroll(bytes.Repeat([]byte{0x41}, protocol.MaxUserDataSize+1))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(transport.writes) != 0 {
		t.Errorf("writes = %d, want none before validation", len(transport.writes))
	}
}

func TestEnrollFailsOnEnrolledNumError(t *testing.T) {
	transport := NewMockTransport()
	transport.AddResponse(3, []byte{0x40, protocol.StatusSensorDirty})

	r := New(transport)
	_, err := r.Enroll(nil)

	var statusErr *protocol.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if statusErr.Code != protocol.StatusSensorDirty {
		t.Errorf("Code = 0x%02X, want 0xFB", statusErr.Code)
	}
}

func TestDeleteByID(t *testing.T) {
	transport := NewMockTransport()
	rec := record(0x00, 0x13)
	transport.AddResponse(3, rec)                // finger_info before delete
	transport.AddResponse(3, []byte{0x40, 0x00}) // delete
	transport.AddResponse(3, record(0x00, 0xFF)) // confirmation re-fetch

	r := New(transport)
	if err := r.DeleteByID(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames := transport.framesWithOpcode([]byte{0x40, 0xFF, 0x13})
	if len(frames) != 1 {
		t.Fatalf("delete frames = %d, want 1", len(frames))
	}
	frame := frames[0]
	if len(frame) != 72 {
		t.Errorf("delete frame = %d bytes, want 72", len(frame))
	}
	if frame[3] != protocol.SlotMarker(4) {
		t.Errorf("marker = 0x%02X, want 0x%02X", frame[3], protocol.SlotMarker(4))
	}
	if !bytes.Equal(frame[4:4+62], rec[2:]) {
		t.Errorf("record tail not echoed back in delete payload")
	}

	// Two finger_info fetches: one for the payload, one for confirmation.
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x12})); got != 2 {
		t.Errorf("finger_info frames = %d, want 2", got)
	}
}

func TestDeleteByIDNotEnrolled(t *testing.T) {
	transport := NewMockTransport()
	// The info fetch fails with the short "not enrolled" form, so no delete
	// frame may be sent.
	transport.AddResponse(3, []byte{0x40, protocol.StatusNotEnrolled})

	r := New(transport)
	err := r.DeleteByID(5)

	var statusErr *protocol.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error = %v, want StatusError", err)
	}
	if statusErr.Code != protocol.StatusNotEnrolled {
		t.Errorf("Code = 0x%02X, want 0xFD", statusErr.Code)
	}
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x13})); got != 0 {
		t.Errorf("delete frames = %d, want 0", got)
	}
}

func TestDeleteAllSkipsUnenrolled(t *testing.T) {
	transport := NewMockTransport()
	// Slot 1 enrolled, everything else reports the unenrolled sentinel in
	// the record's last byte.
	for slot := 0; slot < protocol.MaxFingers; slot++ {
		if slot == 1 {
			transport.AddResponse(3, record(0x00, 0x22))
			continue
		}
		transport.AddResponse(3, record(0x00, 0xFF))
	}
	transport.AddResponse(3, []byte{0x40, 0x00}) // delete of slot 1
	transport.AddResponse(3, record(0x00, 0xFF)) // confirmation re-fetch

	r := New(transport)
	if err := r.DeleteAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	frames := transport.framesWithOpcode([]byte{0x40, 0xFF, 0x13})
	if len(frames) != 1 {
		t.Fatalf("delete frames = %d, want 1", len(frames))
	}
	if frames[0][3] != protocol.SlotMarker(1) {
		t.Errorf("marker = 0x%02X, want slot 1 marker", frames[0][3])
	}
}

func TestDeleteAllIdempotentOnEmptySensor(t *testing.T) {
	transport := NewMockTransport()
	r := New(transport)

	// Two sweeps over an empty sensor: neither may send a delete frame.
	for pass := 0; pass < 2; pass++ {
		for slot := 0; slot < protocol.MaxFingers; slot++ {
			transport.AddResponse(3, record(0x00, 0xFF))
		}
		if err := r.DeleteAll(); err != nil {
			t.Fatalf("pass %d: unexpected error: %v", pass, err)
		}
	}

	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x13})); got != 0 {
		t.Errorf("delete frames = %d, want 0", got)
	}
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x12})); got != 20 {
		t.Errorf("finger_info frames = %d, want 20", got)
	}
}

func TestDeleteAllContinuesPastFailures(t *testing.T) {
	transport := NewMockTransport()
	// Slot 0 fails its info fetch; the sweep must still visit slots 1-9.
	transport.AddResponse(3, []byte{0x40, protocol.StatusSensorDirty})
	for slot := 1; slot < protocol.MaxFingers; slot++ {
		transport.AddResponse(3, record(0x00, 0xFF))
	}

	r := New(transport)
	if err := r.DeleteAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(transport.framesWithOpcode([]byte{0x40, 0xFF, 0x12})); got != 10 {
		t.Errorf("finger_info frames = %d, want 10", got)
	}
}

func TestCapture(t *testing.T) {
	transport := NewMockTransport()
	// sensor_size reports dimensions minus one: 3x2.
	transport.AddResponse(3, []byte{0x02, 0x00, 0x01, 0x00})
	transport.AddResponse(2, []byte{
		0x00, 0x00, 0xF4, 0x01, 0xE8, 0x03, // row 0: 0, 500, 1000
		0xFA, 0x00, 0xEE, 0x02, 0x00, 0x00, // row 1: 250, 750, 0
	})

	r := New(transport)
	frame, err := r.Capture()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if frame.Width != 3 || frame.Height != 2 {
		t.Errorf("geometry = %dx%d, want 3x2", frame.Width, frame.Height)
	}
	want := []uint16{0, 500, 1000, 250, 750, 0}
	for i, w := range want {
		if frame.Pix[i] != w {
			t.Errorf("Pix[%d] = %d, want %d", i, frame.Pix[i], w)
		}
	}

	triggers := transport.framesWithOpcode([]byte{0x00, 0x09})
	if len(triggers) != 1 {
		t.Errorf("capture triggers = %d, want 1", len(triggers))
	}
}

func TestCaptureShortStream(t *testing.T) {
	transport := NewMockTransport()
	transport.AddResponse(3, []byte{0x02, 0x00, 0x01, 0x00})
	transport.AddResponse(2, []byte{0x00, 0x00}) // far too short for 3x2

	r := New(transport)
	if _, err := r.Capture(); err == nil {
		t.Fatal("expected error for short pixel stream, got nil")
	}
}
