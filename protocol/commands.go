package protocol

// Command describes the wire shape of one named command: its opcode bytes,
// the expected total frame lengths in both directions and the bulk
// endpoints carrying them.
//
// OutLen counts the opcode plus payload. The lengths are what the device
// was observed to use; deviations are tolerated (see the sensor package),
// since none of this is documented.
type Command struct {
	Opcode []byte
	OutLen int
	InLen  int
	EpOut  int
	EpIn   int
}

// Commands is the registry of known commands, keyed by name. It is fixed at
// startup and must not be mutated.
var Commands = map[string]Command{
	"fw_ver":        {Opcode: []byte{0x40, 0x19}, OutLen: 2, InLen: 2, EpOut: 1, EpIn: 3},
	"sensor_size":   {Opcode: []byte{0x00, 0x0C}, OutLen: 2, InLen: 4, EpOut: 1, EpIn: 3},
	"verify":        {Opcode: []byte{0x40, 0xFF, 0x03}, OutLen: 3, InLen: 2, EpOut: 1, EpIn: 4},
	"finger_info":   {Opcode: []byte{0x40, 0xFF, 0x12}, OutLen: 4, InLen: 64, EpOut: 1, EpIn: 3},
	"enrolled_num":  {Opcode: []byte{0x40, 0xFF, 0x04}, OutLen: 3, InLen: 2, EpOut: 1, EpIn: 3},
	"enrolled_num1": {Opcode: []byte{0x40, 0xFF, 0x00}, OutLen: 3, InLen: 2, EpOut: 1, EpIn: 3},
	"abort":         {Opcode: []byte{0x40, 0xFF, 0x02}, OutLen: 3, InLen: 2, EpOut: 1, EpIn: 3},
	"commit":        {Opcode: []byte{0x40, 0xFF, 0x11}, OutLen: 72, InLen: 2, EpOut: 1, EpIn: 3},
	"enroll":        {Opcode: []byte{0x40, 0xFF, 0x01}, OutLen: 7, InLen: 2, EpOut: 1, EpIn: 4},
	"after_enroll":  {Opcode: []byte{0x40, 0xFF, 0x10}, OutLen: 3, InLen: 3, EpOut: 1, EpIn: 3},
	"delete":        {Opcode: []byte{0x40, 0xFF, 0x13}, OutLen: 72, InLen: 2, EpOut: 1, EpIn: 3},
}

// Lookup returns the Command registered under name.
func Lookup(name string) (Command, error) {
	cmd, ok := Commands[name]
	if !ok {
		return Command{}, &UnknownCommandError{Name: name}
	}
	return cmd, nil
}

// Frame builds the outgoing frame for cmd: opcode followed by payload.
func (c Command) Frame(payload []byte) []byte {
	frame := make([]byte, 0, len(c.Opcode)+len(payload))
	frame = append(frame, c.Opcode...)
	frame = append(frame, payload...)
	return frame
}
