package protocol

// USB identity of the sensor.
const (
	// VendorID is the ELAN Microelectronics USB vendor ID
	VendorID = 0x04F3

	// ProductID is the product ID of the 0C4C match-on-chip reader
	ProductID = 0x0C4C

	// InterfaceNumber is the interface carrying the bulk endpoints
	InterfaceNumber = 0
)

// Status bytes observed in replies. The classification rule is in
// IsStatusError; the codes below are the ones with a known meaning.
const (
	// StatusOK indicates success
	StatusOK = 0x00

	// StatusMoveDown asks the user to move the finger slightly downwards
	StatusMoveDown = 0x41

	// StatusMoveRight asks the user to move the finger slightly to the right
	StatusMoveRight = 0x42

	// StatusMoveUp asks the user to move the finger slightly upwards
	StatusMoveUp = 0x43

	// StatusMoveLeft asks the user to move the finger slightly to the left
	StatusMoveLeft = 0x44

	// StatusSensorDirty indicates a dirty or wet sensor surface
	StatusSensorDirty = 0xFB

	// StatusNotEnrolled indicates the placed finger matches no stored template
	StatusNotEnrolled = 0xFD

	// StatusAreaTooSmall indicates too little finger area touched the sensor
	StatusAreaTooSmall = 0xFE

	// StatusMaxFingers indicates all template slots are occupied
	StatusMaxFingers = 0xDD

	// SentinelAngry is returned by finger_info when the sensor refuses to
	// answer until a verification calms it down. It is a distinct sentinel,
	// not part of the regular status table.
	SentinelAngry = 0xFF
)

// Template slot constraints.
const (
	// MaxFingers is the number of template slots on the sensor (ids 0-9)
	MaxFingers = 10

	// CommitPayloadSize is the payload size of commit and delete frames:
	// 1 slot marker byte + up to MaxUserDataSize data bytes + zero padding
	CommitPayloadSize = 69

	// MaxUserDataSize is the maximum user data that fits a commit payload
	MaxUserDataSize = CommitPayloadSize - 1
)

// Raw image capture. The capture reply size depends on the sensor geometry
// reported by sensor_size, so it bypasses the command table.
const (
	// CaptureEpOut is the OUT endpoint taking the capture trigger
	CaptureEpOut = 1

	// CaptureEpIn is the dedicated IN endpoint streaming pixel data
	CaptureEpIn = 2
)

// CaptureTrigger starts a raw image capture when written to CaptureEpOut.
var CaptureTrigger = []byte{0x00, 0x09}
