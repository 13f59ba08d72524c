package sensor

import (
	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/protocol"
)

// Verify waits for a finger placement and matches it against the on-chip
// templates, returning the slot of the recognized finger.
//
// Placement hints (move slightly up/down/left/right) and other status
// errors are reported and retried; by default Verify blocks until a finger
// is recognized or the transport fails. Cancel externally or bound the loop
// with WithRetryLimit.
func (r *Reader) Verify() (int, error) {
	for attempts := 0; ; attempts++ {
		if err := r.checkRetry("verify", attempts); err != nil {
			return 0, err
		}

		r.prompt("Place finger on reader")
		resp, err := r.command("verify", nil, r.cfg.PlacementTimeout)
		if err != nil {
			return 0, err
		}
		st, err := status("verify", resp)
		if err != nil {
			return 0, err
		}
		if protocol.IsStatusError(st) {
			log.Infof("verify: %s", protocol.StatusText(st))
			continue
		}

		log.Debugf("recognized finger %d", st)
		return int(st), nil
	}
}
