package imaging

import (
	"fmt"
	"image"
	"math"
)

// DegenerateCaptureError indicates a frame with zero dynamic range (every
// sample identical, e.g. nothing on the sensor and no light), which cannot
// be normalized.
type DegenerateCaptureError struct {
	Value uint16
}

func (e *DegenerateCaptureError) Error() string {
	return fmt.Sprintf("degenerate capture: zero dynamic range, all samples are %d", e.Value)
}

// Normalize rescales a raw 16-bit frame into an 8-bit greyscale image. Each
// sample maps to round((v-min) * 256 / (max-min)), clamped to 255. The 256
// divisor sends a full-range sample to 256 before the clamp; that matches
// how captures were decoded while reverse engineering, and correcting it to
// 255 would darken every previously captured image by one level, so the
// literal behavior is kept.
func Normalize(f *Frame) (*image.Gray, error) {
	min, max := f.Range()
	if max == min {
		return nil, &DegenerateCaptureError{Value: min}
	}

	diff := float64(max - min)
	img := image.NewGray(image.Rect(0, 0, f.Width, f.Height))
	for i, v := range f.Pix {
		scaled := math.Round(float64(v-min) * 256 / diff)
		if scaled > 255 {
			scaled = 255
		}
		img.Pix[i] = uint8(scaled)
	}
	return img, nil
}
