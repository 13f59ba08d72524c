package sensor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/protocol"
)

// FingerInfo returns the sensor's record for a template slot. The record
// is opaque apart from byte 1 (status) and its tail, which delete payloads
// echo back; the enrolled user data is in there somewhere too.
//
// When the sensor answers with the 0xFF sentinel it refuses to talk until
// it has seen a successful verification ("the sensor is angry"). FingerInfo
// recovers from that automatically by running a Verify round, which
// consumes a finger placement.
func (r *Reader) FingerInfo(slot int) ([]byte, error) {
	if slot < 0 || slot >= protocol.MaxFingers {
		return nil, fmt.Errorf("finger slot %d out of range 0-%d", slot, protocol.MaxFingers-1)
	}

	for attempts := 0; ; attempts++ {
		if err := r.checkRetry("finger info", attempts); err != nil {
			return nil, err
		}

		resp, err := r.command("finger_info", []byte{byte(slot)}, r.cfg.CommandTimeout)
		if err != nil {
			return nil, err
		}
		st, err := status("finger_info", resp)
		if err != nil {
			return nil, err
		}

		if st == protocol.SentinelAngry {
			log.Warn("sensor is angry, verify a finger to calm it down")
			if _, err := r.Verify(); err != nil {
				return nil, err
			}
			continue
		}

		// A 2-byte reply is the short error form instead of the record.
		if len(resp) == 2 {
			return nil, &protocol.StatusError{Op: "finger info", Code: st}
		}
		return resp, nil
	}
}
