package xl3

import (
	"bytes"

	"gitlab.com/gomidi/midi/v2"
)

const (
	SysExStart = 0xf0
	SysExEnd   = 0xf7

	// Command bytes following the device header.
	CommandLED              = 0x01
	CommandConfigureDisplay = 0x04
	CommandSetText          = 0x06

	// LED subcommands.
	SubcommandRGB = 0x53
)

// header is the Novation manufacturer id followed by the device family
// and the Launch Control XL 3 model id.
var header = []byte{0x00, 0x20, 0x29, 0x02, 0x15}

// Frame returns a complete SysEx message for the given command and
// payload: F0 00 20 29 02 15 <command...> F7. The payload is not
// validated.
func Frame(command ...byte) []byte {
	data := make([]byte, 0, len(header)+len(command))
	data = append(data, header...)
	data = append(data, command...)
	return midi.SysEx(data)
}

// IsDeviceSysEx reports whether msg is a complete SysEx message
// carrying the Launch Control XL 3 header.
func IsDeviceSysEx(msg []byte) bool {
	if len(msg) < len(header)+2 {
		return false
	}
	if msg[0] != SysExStart || msg[len(msg)-1] != SysExEnd {
		return false
	}
	return bytes.Equal(msg[1:1+len(header)], header)
}
