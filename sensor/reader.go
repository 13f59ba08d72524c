package sensor

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/protocol"
)

// Reader drives the fingerprint sensor workflows over a Transport.
//
// A Reader is stateless between calls; all state lives on the sensor
// itself. It is not safe for concurrent use: the device answers exactly one
// command at a time.
type Reader struct {
	transport Transport
	cfg       Config
}

// New creates a Reader for the given transport.
//
// Example:
//
//	dev, err := usb.Open()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dev.Close()
//
//	r := sensor.New(dev, sensor.WithRetryLimit(100))
func New(transport Transport, opts ...Option) *Reader {
	if transport == nil {
		panic("transport cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Reader{
		transport: transport,
		cfg:       cfg,
	}
}

// command executes one named command: look it up, build the frame, bulk
// write it and bulk read the reply.
//
// Length expectations from the command table are checked but violations are
// only warnings. The protocol is reverse engineered, so drift is tolerated
// in both directions: a wrong-sized frame is still sent (the device may
// well answer it) and a short reply is returned as-is.
func (r *Reader) command(name string, payload []byte, timeout time.Duration) ([]byte, error) {
	cmd, err := protocol.Lookup(name)
	if err != nil {
		return nil, err
	}

	frame := cmd.Frame(payload)
	if len(frame) != cmd.OutLen {
		log.Warnf("%s: wrong command size: %d vs %d", name, len(frame), cmd.OutLen)
	}

	log.Debugf("%s: -> ep %d % x", name, cmd.EpOut, frame)
	if err := r.transport.Write(cmd.EpOut, frame, timeout); err != nil {
		return nil, fmt.Errorf("%s: write: %w", name, err)
	}

	resp, err := r.transport.Read(cmd.EpIn, cmd.InLen, timeout)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", name, err)
	}
	log.Debugf("%s: <- ep %d % x", name, cmd.EpIn, resp)

	if len(resp) < cmd.InLen {
		log.Warnf("%s: device replied with shorter answer: %d vs %d", name, len(resp), cmd.InLen)
	}
	return resp, nil
}

// status extracts the status byte from a reply.
func status(op string, resp []byte) (byte, error) {
	if len(resp) < 2 {
		return 0, &ShortReplyError{Op: op, Len: len(resp)}
	}
	return resp[1], nil
}

// checkRetry enforces the configured retry budget. attempts counts failed
// attempts so far; the first try is always allowed.
func (r *Reader) checkRetry(op string, attempts int) error {
	if r.cfg.RetryLimit > 0 && attempts >= r.cfg.RetryLimit {
		return &RetryLimitError{Op: op, Attempts: attempts}
	}
	return nil
}

// prompt surfaces operator guidance if a prompt callback is configured.
func (r *Reader) prompt(msg string) {
	if r.cfg.Prompt != nil {
		r.cfg.Prompt(msg)
	}
}

// FirmwareVersion queries the sensor firmware version.
func (r *Reader) FirmwareVersion() (major, minor byte, err error) {
	resp, err := r.command("fw_ver", nil, r.cfg.CommandTimeout)
	if err != nil {
		return 0, 0, err
	}
	if len(resp) < 2 {
		return 0, 0, &ShortReplyError{Op: "fw_ver", Len: len(resp)}
	}
	return resp[0], resp[1], nil
}

// EnrolledCount returns the number of currently enrolled fingers.
func (r *Reader) EnrolledCount() (int, error) {
	resp, err := r.command("enrolled_num", nil, r.cfg.CommandTimeout)
	if err != nil {
		return 0, err
	}
	st, err := status("enrolled_num", resp)
	if err != nil {
		return 0, err
	}
	if protocol.IsStatusError(st) {
		return 0, &protocol.StatusError{Op: "query enrolled fingers", Code: st}
	}
	return int(st), nil
}

// Abort writes the abort command to calm the sensor down, fire and forget.
// It is meant for cleanup paths after a failed workflow, so its own failure
// is only logged.
func (r *Reader) Abort() {
	cmd, err := protocol.Lookup("abort")
	if err != nil {
		return
	}
	if err := r.transport.Write(cmd.EpOut, cmd.Frame(nil), r.cfg.CommandTimeout); err != nil {
		log.Debugf("abort: %v", err)
	}
}

// Reset performs a USB device reset.
func (r *Reader) Reset() error {
	return r.transport.Reset()
}
