package sensor

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vogtinator/go-elanfp/imaging"
	"github.com/vogtinator/go-elanfp/protocol"
)

// Capture grabs one raw image frame from the sensor.
//
// The frame size depends on the geometry the sensor reports (dimensions
// come back minus one), so the pixel transfer bypasses the command table:
// the trigger goes to the usual OUT endpoint and 2*width*height bytes of
// 16-bit samples stream in on the dedicated image endpoint.
func (r *Reader) Capture() (*imaging.Frame, error) {
	resp, err := r.command("sensor_size", nil, r.cfg.CommandTimeout)
	if err != nil {
		return nil, err
	}
	if len(resp) < 4 {
		return nil, &ShortReplyError{Op: "sensor_size", Len: len(resp)}
	}

	width := int(resp[0]) + 1
	height := int(resp[2]) + 1
	log.Debugf("sensor size %dx%d", width, height)

	if err := r.transport.Write(protocol.CaptureEpOut, protocol.CaptureTrigger, r.cfg.PlacementTimeout); err != nil {
		return nil, fmt.Errorf("capture trigger: write: %w", err)
	}
	raw, err := r.transport.Read(protocol.CaptureEpIn, 2*width*height, r.cfg.PlacementTimeout)
	if err != nil {
		return nil, fmt.Errorf("capture: read: %w", err)
	}

	return imaging.DecodeFrame(width, height, raw)
}
