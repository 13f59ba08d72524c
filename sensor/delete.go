package sensor

import (
	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/protocol"
)

// DeleteByID deletes the template in the given slot. The sensor insists on
// seeing the slot's own record in the delete payload, so the record is
// fetched first; a slot that fails the fetch (e.g. not enrolled) fails the
// deletion without a delete frame ever being sent.
func (r *Reader) DeleteByID(slot int) error {
	record, err := r.FingerInfo(slot)
	if err != nil {
		return err
	}

	payload, err := protocol.DeletePayload(byte(slot), record[2:])
	if err != nil {
		return err
	}
	return r.delete(slot, payload)
}

// DeleteAll sweeps all template slots, deleting every enrolled finger.
// Slots whose record ends in the 0xFF sentinel are not enrolled and are
// skipped. The sweep is best-effort: a failing slot is reported and the
// sweep moves on.
func (r *Reader) DeleteAll() error {
	for slot := 0; slot < protocol.MaxFingers; slot++ {
		record, err := r.FingerInfo(slot)
		if err != nil {
			log.Warnf("finger %d: %v", slot, err)
			continue
		}
		if record[len(record)-1] == protocol.SentinelAngry {
			log.Infof("finger %d not enrolled", slot)
			continue
		}

		payload, err := protocol.DeletePayload(byte(slot), record[2:])
		if err != nil {
			log.Warnf("finger %d: %v", slot, err)
			continue
		}
		if err := r.delete(slot, payload); err != nil {
			log.Warnf("finger %d: %v", slot, err)
		}
	}
	return nil
}

// delete sends one delete frame and, on success, re-fetches the slot's
// record so the operator can see the slot is gone.
func (r *Reader) delete(slot int, payload []byte) error {
	resp, err := r.command("delete", payload, r.cfg.CommandTimeout)
	if err != nil {
		return err
	}
	st, err := status("delete", resp)
	if err != nil {
		return err
	}
	if st != protocol.StatusOK {
		return &protocol.StatusError{Op: "delete finger", Code: st}
	}

	record, err := r.FingerInfo(slot)
	if err != nil {
		log.Warnf("finger %d deleted, but re-reading its info failed: %v", slot, err)
		return nil
	}
	log.Infof("deleted finger %d, info now: % x", slot, record)
	return nil
}
