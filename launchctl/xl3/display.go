package xl3

import (
	"fmt"

	"go.uber.org/zap"
)

// Target selects one of the two display surfaces.
type Target byte

const (
	TargetStationary Target = 0x35 // permanent
	TargetTemporary  Target = 0x36 // overlay, dismissed by the device
)

func (t Target) String() string {
	switch t {
	case TargetStationary:
		return "stationary"
	case TargetTemporary:
		return "temporary"
	}
	return fmt.Sprintf("target(0x%02x)", byte(t))
}

// Arrangement is the line layout of a display target. The AutoDisplay
// flags may be OR-ed into a per-control arrangement.
type Arrangement byte

const (
	ArrangementCancel    Arrangement = 0x00
	ArrangementTwoLine   Arrangement = 0x01 // name, value
	ArrangementThreeLine Arrangement = 0x02 // title, name, value
	ArrangementNumeric   Arrangement = 0x04
	ArrangementTrigger   Arrangement = 0x7f // commit the staged configuration

	AutoDisplayOnTouch       Arrangement = 0x20
	AutoDisplayOnValueChange Arrangement = 0x40
)

// TargetState is the locally tracked state of a display target. A
// zero TargetState is idle.
type TargetState struct {
	Arrangement Arrangement // last configured arrangement
	Committed   bool        // a trigger followed the arrangement
}

// Idle reports whether nothing is configured on the target.
func (s TargetState) Idle() bool {
	return s.Arrangement == ArrangementCancel && !s.Committed
}

// Display writes to the OLED display of a Device. Like LEDs, calls are
// best effort and send nothing while the device is disconnected.
type Display struct {
	port    port
	log     *zap.Logger
	targets map[Target]TargetState
}

func newDisplay(p port, log *zap.Logger) *Display {
	return &Display{
		port:    p,
		log:     log,
		targets: map[Target]TargetState{},
	}
}

// SetStationary shows two lines on the permanent display.
func (d *Display) SetStationary(line1, line2 string) {
	d.show(TargetStationary, ArrangementTwoLine, line1, line2)
}

// SetStationary3Line shows a title, name and value on the permanent
// display.
func (d *Display) SetStationary3Line(title, name, value string) {
	d.show(TargetStationary, ArrangementThreeLine, title, name, value)
}

// ShowTemporary shows a name and value on the overlay display until
// the device's own timeout dismisses it.
func (d *Display) ShowTemporary(name, value string) {
	d.show(TargetTemporary, ArrangementTwoLine, name, value)
}

// ClearStationary cancels the permanent display.
func (d *Display) ClearStationary() {
	d.Configure(TargetStationary, ArrangementCancel)
}

// ClearTemporary cancels the overlay display.
func (d *Display) ClearTemporary() {
	d.Configure(TargetTemporary, ArrangementCancel)
}

// CancelControlDisplay stops the device from showing the overlay when
// the control at index is touched or moved.
func (d *Display) CancelControlDisplay(index int) {
	d.ConfigureControl(index, ArrangementCancel)
}

// ConfigureControl sets the overlay arrangement and AutoDisplay flags
// of the control at index (5-52).
func (d *Display) ConfigureControl(index int, arr Arrangement) {
	if !d.port.connected() {
		return
	}
	if !ValidControlIndex(index) {
		d.log.Warn("invalid control index", zap.Int("index", index), zap.Error(ErrInvalidIndex))
		return
	}
	if !dataByte(int(arr)) {
		d.log.Warn("invalid arrangement", zap.Int("arrangement", int(arr)), zap.Error(ErrInvalidIndex))
		return
	}
	d.sendFrame(Frame(CommandConfigureDisplay, byte(index), byte(arr)))
}

// Configure sends a configure message for a target and records the
// resulting state.
func (d *Display) Configure(target Target, arr Arrangement) {
	if !d.port.connected() {
		return
	}
	if !dataByte(int(target)) || !dataByte(int(arr)) {
		d.log.Warn("invalid display configuration",
			zap.Int("target", int(target)), zap.Int("arrangement", int(arr)), zap.Error(ErrInvalidIndex))
		return
	}

	d.sendFrame(Frame(CommandConfigureDisplay, byte(target), byte(arr)))

	s := d.targets[target]
	switch arr {
	case ArrangementCancel:
		s = TargetState{}
	case ArrangementTrigger:
		s.Committed = true
	default:
		s = TargetState{Arrangement: arr}
	}
	d.targets[target] = s
}

// SetText sets a positional field of a target. Characters outside
// printable ASCII are dropped.
func (d *Display) SetText(target Target, field int, text string) {
	if !d.port.connected() {
		return
	}
	if !dataByte(int(target)) || !dataByte(field) {
		d.log.Warn("invalid display field",
			zap.Int("target", int(target)), zap.Int("field", field), zap.Error(ErrInvalidIndex))
		return
	}

	data := make([]byte, 0, 3+len(text))
	data = append(data, CommandSetText, byte(target), byte(field))
	data = appendPrintable(data, text)
	d.sendFrame(Frame(data...))
}

// State returns the tracked state of a target.
func (d *Display) State(target Target) TargetState {
	return d.targets[target]
}

// show configures target, sets one field per line in order and then
// commits the arrangement.
func (d *Display) show(target Target, arr Arrangement, lines ...string) {
	if !d.port.connected() {
		return
	}
	d.Configure(target, arr)
	for field, text := range lines {
		d.SetText(target, field, text)
	}
	d.Configure(target, ArrangementTrigger)
}

func (d *Display) sendFrame(frame []byte) {
	if err := d.port.send(frame); err != nil {
		d.log.Error("failed to send display message", zap.Error(err))
	}
}

// dataByte reports whether v fits a MIDI data byte.
func dataByte(v int) bool {
	return v >= 0 && v <= 0x7f
}

// appendPrintable appends the bytes of s in 0x20-0x7e to data.
func appendPrintable(data []byte, s string) []byte {
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 0x20 && c <= 0x7e {
			data = append(data, c)
		}
	}
	return data
}
