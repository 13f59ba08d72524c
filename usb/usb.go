// Package usb connects the sensor package to real hardware through libusb.
//
// Open finds the reader by its fixed vendor/product ID, claims interface 0
// and hands out a Device implementing sensor.Transport. The device is an
// exclusively-owned resource: open it once at startup and Close it on every
// exit path.
package usb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/gousb"

	"github.com/vogtinator/go-elanfp/protocol"
)

// ErrDeviceNotFound indicates that no ELAN 04F3:0C4C reader is attached.
var ErrDeviceNotFound = errors.New("fingerprint reader 04f3:0c4c not found")

// Device is an open, claimed fingerprint reader. It implements
// sensor.Transport.
type Device struct {
	ctx  *gousb.Context
	dev  *gousb.Device
	intf *gousb.Interface
	done func()
}

// Open finds the reader, detaches any kernel driver and claims its
// interface. The caller must Close the returned Device.
func Open() (*Device, error) {
	ctx := gousb.NewContext()

	dev, err := ctx.OpenDeviceWithVIDPID(gousb.ID(protocol.VendorID), gousb.ID(protocol.ProductID))
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("open device: %w", err)
	}
	if dev == nil {
		ctx.Close()
		return nil, ErrDeviceNotFound
	}

	if err := dev.SetAutoDetach(true); err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("detach kernel driver: %w", err)
	}

	intf, done, err := dev.DefaultInterface()
	if err != nil {
		dev.Close()
		ctx.Close()
		return nil, fmt.Errorf("claim interface %d: %w", protocol.InterfaceNumber, err)
	}

	return &Device{ctx: ctx, dev: dev, intf: intf, done: done}, nil
}

// Close releases the interface and closes the device and the libusb
// context.
func (d *Device) Close() error {
	d.done()
	err := d.dev.Close()
	if cerr := d.ctx.Close(); err == nil {
		err = cerr
	}
	return err
}

// Write sends data to a bulk OUT endpoint, bounded by timeout.
func (d *Device) Write(endpoint int, data []byte, timeout time.Duration) error {
	ep, err := d.intf.OutEndpoint(endpoint)
	if err != nil {
		return fmt.Errorf("out endpoint %d: %w", endpoint, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	n, err := ep.WriteContext(ctx, data)
	if err != nil {
		return fmt.Errorf("bulk write to endpoint %d: %w", endpoint, err)
	}
	if n != len(data) {
		return fmt.Errorf("bulk write to endpoint %d: short write, %d of %d bytes", endpoint, n, len(data))
	}
	return nil
}

// Read receives up to max bytes from a bulk IN endpoint, bounded by
// timeout. A short read is returned as-is; interpreting it is the caller's
// job.
func (d *Device) Read(endpoint int, max int, timeout time.Duration) ([]byte, error) {
	ep, err := d.intf.InEndpoint(endpoint)
	if err != nil {
		return nil, fmt.Errorf("in endpoint %d: %w", endpoint, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	buf := make([]byte, max)
	n, err := ep.ReadContext(ctx, buf)
	if err != nil {
		return nil, fmt.Errorf("bulk read from endpoint %d: %w", endpoint, err)
	}
	return buf[:n], nil
}

// Reset performs a USB device reset.
func (d *Device) Reset() error {
	return d.dev.Reset()
}
