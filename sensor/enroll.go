package sensor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/protocol"
)

// EnrollSamples is the number of successful sampling rounds one enrollment
// needs before the template can be committed.
const EnrollSamples = 8

// Enroll enrolls a new finger and returns its slot. The user data is
// stored with the template on the sensor and comes back with finger info;
// it must fit the commit payload (at most protocol.MaxUserDataSize bytes).
//
// The workflow mirrors the sequence the Windows driver performs:
//
//  1. Query the enrolled count; the count doubles as the next free slot.
//  2. Wait until a finger is placed that is NOT yet enrolled (the sensor
//     answers verify with "not enrolled" only once an unknown finger sits
//     on it).
//  3. Collect EnrollSamples successful sampling rounds, re-trying failed
//     rounds. A full sensor (0xDD) aborts the enrollment immediately.
//  4. Send after_enroll (reply meaning unknown, logged only) and commit
//     the template with the user data attached.
func (r *Reader) Enroll(userData []byte) (int, error) {
	if len(userData) > protocol.MaxUserDataSize {
		return 0, fmt.Errorf("user data too long: %d bytes, maximum is %d", len(userData), protocol.MaxUserDataSize)
	}

	resp, err := r.command("enrolled_num", nil, r.cfg.CommandTimeout)
	if err != nil {
		return 0, err
	}
	st, err := status("enrolled_num", resp)
	if err != nil {
		return 0, err
	}
	if protocol.IsStatusError(st) {
		return 0, &protocol.StatusError{Op: "retrieve currently enrolled fingers", Code: st}
	}

	// Slots are assigned sequentially, so the enrolled count is the slot
	// the new finger will land in.
	slot := int(st)
	log.Infof("enrolled fingers: %d", slot)

	if err := r.awaitUnenrolledFinger(); err != nil {
		return 0, err
	}

	if err := r.sampleFinger(slot); err != nil {
		return 0, err
	}

	resp, err = r.command("after_enroll", nil, r.cfg.CommandTimeout)
	if err != nil {
		return 0, err
	}
	log.Debugf("after_enroll reply: % x", resp)

	if err := r.commit(slot, userData); err != nil {
		return 0, err
	}
	return slot, nil
}

// awaitUnenrolledFinger loops until the placed finger is one the sensor
// does not know yet. A successful verify means the finger is already
// enrolled; anything but "not enrolled" is reported and retried.
func (r *Reader) awaitUnenrolledFinger() error {
	for attempts := 0; ; attempts++ {
		if err := r.checkRetry("enroll pre-check", attempts); err != nil {
			return err
		}

		r.prompt("Place finger on reader")
		resp, err := r.command("verify", nil, r.cfg.PlacementTimeout)
		if err != nil {
			return err
		}
		st, err := status("verify", resp)
		if err != nil {
			return err
		}
		if !protocol.IsStatusError(st) {
			log.Warnf("finger already enrolled: %d", st)
			continue
		}
		if st != protocol.StatusNotEnrolled {
			log.Infof("enroll pre-check: %s", protocol.StatusText(st))
			continue
		}
		return nil
	}
}

// sampleFinger runs the sampling rounds for the given slot. Failed rounds
// are retried at the same sample index; only success advances.
func (r *Reader) sampleFinger(slot int) error {
	done := 0
	for attempts := 0; done < EnrollSamples; attempts++ {
		if err := r.checkRetry("enroll sampling", attempts-done); err != nil {
			return err
		}

		r.prompt(fmt.Sprintf("Place finger on reader [%d/%d]", done+1, EnrollSamples))
		payload := protocol.EnrollPayload(byte(slot), EnrollSamples, byte(done))
		resp, err := r.command("enroll", payload, r.cfg.EnrollTimeout)
		if err != nil {
			return err
		}
		st, err := status("enroll", resp)
		if err != nil {
			return err
		}
		if st == protocol.StatusMaxFingers {
			return &MaxFingersError{}
		}
		if st != protocol.StatusOK {
			log.Warnf("enroll sample %d: %s (0x%02x)", done+1, protocol.StatusText(st), st)
			continue
		}
		done++
	}
	return nil
}

// commit persists the sampled template with the user data attached.
func (r *Reader) commit(slot int, userData []byte) error {
	payload, err := protocol.CommitPayload(byte(slot), userData)
	if err != nil {
		return err
	}

	resp, err := r.command("commit", payload, r.cfg.CommandTimeout)
	if err != nil {
		return err
	}
	st, err := status("commit", resp)
	if err != nil {
		return err
	}
	if st != protocol.StatusOK {
		// The sensor does not explain commit failures; hand the raw reply
		// to the caller.
		return fmt.Errorf("commit rejected, sensor replied % x", resp)
	}

	log.Infof("enrolled finger %d", slot)
	return nil
}
