package imaging

import (
	"encoding/binary"
	"fmt"
)

// Frame is one raw capture from the sensor: Width*Height unsigned 16-bit
// samples in row-major order.
type Frame struct {
	Width  int
	Height int
	Pix    []uint16
}

// DecodeFrame decodes a little-endian 16-bit pixel buffer as read from the
// image endpoint.
func DecodeFrame(width, height int, raw []byte) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame geometry %dx%d", width, height)
	}
	if want := 2 * width * height; len(raw) != want {
		return nil, fmt.Errorf("short capture: got %d bytes, expected %d for %dx%d", len(raw), want, width, height)
	}

	pix := make([]uint16, width*height)
	for i := range pix {
		pix[i] = binary.LittleEndian.Uint16(raw[2*i:])
	}
	return &Frame{Width: width, Height: height, Pix: pix}, nil
}

// Range returns the minimum and maximum sample values of the frame.
func (f *Frame) Range() (min, max uint16) {
	min = f.Pix[0]
	for _, v := range f.Pix {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
