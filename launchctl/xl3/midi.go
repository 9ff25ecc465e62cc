package xl3

import (
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

const (
	MIDIStatusNoteOff       = 0x80
	MIDIStatusNoteOn        = 0x90
	MIDIStatusControlChange = 0xb0
	MIDIStatusCodeMask      = 0xf0
	MIDIChannelMask         = 0x0f

	// DAW mode is toggled by a note on for note 12 on channel 16.
	DawModeChannel         = 15
	DawModeNote            = 12
	DawModeEnableVelocity  = 127
	DawModeDisableVelocity = 0

	// MainPortPrefix starts the name of the Custom Mode port.
	MainPortPrefix = "LCXL3"
)

var deviceNameTokens = []string{"lcxl3", "launch control xl"}

// Ports enumerates the MIDI ports visible to the process.
type Ports interface {
	Ins() []drivers.In
	Outs() []drivers.Out
}

// SystemPorts returns the ports of the registered gomidi driver.
func SystemPorts() Ports {
	return systemPorts{}
}

type systemPorts struct{}

func (systemPorts) Ins() []drivers.In {
	return []drivers.In(midi.GetInPorts())
}

func (systemPorts) Outs() []drivers.Out {
	return []drivers.Out(midi.GetOutPorts())
}

// IsMainPortName reports whether name is the Custom Mode port: it
// starts with "LCXL3" and is not a DAW port.
func IsMainPortName(name string) bool {
	return strings.HasPrefix(name, MainPortPrefix) &&
		!strings.Contains(strings.ToLower(name), "daw")
}

// IsDawPortName reports whether name is a Launch Control XL 3 DAW
// port. Matching is case-insensitive.
func IsDawPortName(name string) bool {
	lower := strings.ToLower(name)
	if !strings.Contains(lower, "daw") {
		return false
	}
	for _, tok := range deviceNameTokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// findPort returns the first port whose name satisfies match.
func findPort[P drivers.Port](ports []P, match func(string) bool) (p P, ok bool) {
	for _, port := range ports {
		if match(port.String()) {
			return port, true
		}
	}
	return p, false
}

// PortNames lists the names of the input and output ports.
func PortNames(ports Ports) (ins, outs []string) {
	for _, in := range ports.Ins() {
		ins = append(ins, in.String())
	}
	for _, out := range ports.Outs() {
		outs = append(outs, out.String())
	}
	return ins, outs
}
