package sensor

import "time"

// Transport moves raw bytes between the host and the sensor's bulk
// endpoints. The usb package provides the libusb-backed implementation;
// tests substitute a mock.
//
// Both directions take an explicit per-call timeout. Implementations must
// not retry on their own; all retry logic lives in the workflows.
type Transport interface {
	// Write sends data to a bulk OUT endpoint.
	Write(endpoint int, data []byte, timeout time.Duration) error

	// Read receives up to max bytes from a bulk IN endpoint. Short reads
	// are returned as-is, not treated as errors.
	Read(endpoint int, max int, timeout time.Duration) ([]byte, error)

	// Reset performs a USB device reset.
	Reset() error
}
