// Package imaging turns raw capture frames from the fingerprint sensor into
// 8-bit greyscale images.
//
// The sensor streams width x height unsigned 16-bit samples, row-major and
// little-endian. Only a fraction of the 16-bit range carries signal, so the
// pipeline rescales each frame linearly between its own minimum and maximum
// before persisting it as a PNG:
//
//	frame, err := imaging.DecodeFrame(width, height, raw)
//	img, err := imaging.Normalize(frame)
//	err = imaging.WritePNG("finger.png", img)
package imaging
