package xl3

import (
	"fmt"
)

// Control index address space used by LED and display commands.
const (
	ControlIndexFirst = 5
	ControlIndexLast  = 52
	NumControlIndices = ControlIndexLast - ControlIndexFirst + 1

	FaderIndexFirst = 5
	FaderIndexLast  = 12

	EncoderRow1IndexFirst = 13
	EncoderRow1IndexLast  = 20
	EncoderRow2IndexFirst = 21
	EncoderRow2IndexLast  = 28
	EncoderRow3IndexFirst = 29
	EncoderRow3IndexLast  = 36

	ButtonTopRowIndexFirst    = 37
	ButtonTopRowIndexLast     = 44
	ButtonBottomRowIndexFirst = 45
	ButtonBottomRowIndexLast  = 52
)

// ControlClass selects the logical numbering used by ControlIndex.
type ControlClass int

const (
	ClassFader ControlClass = iota
	ClassEncoder
	ClassButton
)

var classRanges = [...]struct {
	name  string
	first int // control index of logical number 1
	count int
}{
	ClassFader:   {"fader", FaderIndexFirst, 8},
	ClassEncoder: {"encoder", EncoderRow1IndexFirst, 24},
	ClassButton:  {"button", ButtonTopRowIndexFirst, 16},
}

func (c ControlClass) String() string {
	if c < 0 || int(c) >= len(classRanges) {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return classRanges[c].name
}

// ControlIndex maps a 1-based logical control number of the given
// class onto the device's control index. Numbers outside the class
// range are reported as ErrInvalidIndex, never clamped.
func ControlIndex(class ControlClass, num int) (int, error) {
	if class < 0 || int(class) >= len(classRanges) {
		return 0, fmt.Errorf("%w: unknown control class %d", ErrInvalidIndex, int(class))
	}
	r := classRanges[class]
	if num < 1 || num > r.count {
		return 0, fmt.Errorf("%w: %s number %d (valid range: 1-%d)", ErrInvalidIndex, r.name, num, r.count)
	}
	return r.first + num - 1, nil
}

// ValidControlIndex reports whether idx addresses a physical control.
func ValidControlIndex(idx int) bool {
	return idx >= ControlIndexFirst && idx <= ControlIndexLast
}

// Input controls, as decoded from Custom Mode control changes, are
// assigned in the range [0, NumControls): 24 encoders, 8 faders, then
// 16 buttons.
const (
	NumEncoders = 24
	NumFaders   = 8
	NumButtons  = 16
	NumControls = NumEncoders + NumFaders + NumButtons

	ControlInvalid Control = NumControls
)

var (
	ControlEncoderRow1  = controlRange(0, 8)
	ControlEncoderRow2  = controlRange(8, 16)
	ControlEncoderRow3  = controlRange(16, 24)
	ControlFader        = controlRange(24, 32)
	ControlButtonTop    = controlRange(32, 40)
	ControlButtonBottom = controlRange(40, 48)
)

// controlCC is the fixed Custom Mode control change number of every
// input control. Encoders and faders follow the device's knob table
// (encoders 13-36, faders reuse 5-12); buttons are 24-31 and 45-52.
var controlCC = [NumControls]uint8{
	// encoders
	13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28,
	29, 30, 31, 32, 33, 34, 35, 36,
	// faders
	5, 6, 7, 8, 9, 10, 11, 12,
	// buttons
	24, 25, 26, 27, 28, 29, 30, 31,
	45, 46, 47, 48, 49, 50, 51, 52,
}

// ccControls is the inverse of controlCC. Button CCs 24-31 coincide
// with encoders 12-19, so a number may name two controls.
var ccControls [128][]Control

func init() {
	for i, cc := range controlCC {
		ccControls[cc] = append(ccControls[cc], Control(i))
	}
}

// ButtonControl returns the input control of button num (1-16).
func ButtonControl(num int) (Control, error) {
	return inputControl(ClassButton, num)
}

// EncoderControl returns the input control of encoder num (1-24).
func EncoderControl(num int) (Control, error) {
	return inputControl(ClassEncoder, num)
}

// FaderControl returns the input control of fader num (1-8).
func FaderControl(num int) (Control, error) {
	return inputControl(ClassFader, num)
}

func inputControl(class ControlClass, num int) (Control, error) {
	if _, err := ControlIndex(class, num); err != nil {
		return ControlInvalid, err
	}
	switch class {
	case ClassEncoder:
		return ControlEncoderRow1[0] + Control(num-1), nil
	case ClassFader:
		return ControlFader[0] + Control(num-1), nil
	default:
		return ControlButtonTop[0] + Control(num-1), nil
	}
}

// ControlChange returns the Custom Mode CC number of an input control.
func ControlChange(con Control) (uint8, error) {
	if con < 0 || con >= NumControls {
		return 0, fmt.Errorf("%w: input control %d", ErrInvalidIndex, int(con))
	}
	return controlCC[con], nil
}

// ControlsForCC returns the input controls bound to a CC number.
func ControlsForCC(cc uint8) []Control {
	if int(cc) >= len(ccControls) {
		return nil
	}
	return ccControls[cc]
}

// LEDIndex returns the control index addressing the LED of an input
// control.
func LEDIndex(con Control) (int, error) {
	switch {
	case con >= ControlEncoderRow1[0] && con <= ControlEncoderRow3[7]:
		return ControlIndex(ClassEncoder, int(con-ControlEncoderRow1[0])+1)
	case con >= ControlFader[0] && con <= ControlFader[7]:
		return ControlIndex(ClassFader, int(con-ControlFader[0])+1)
	case con >= ControlButtonTop[0] && con <= ControlButtonBottom[7]:
		return ControlIndex(ClassButton, int(con-ControlButtonTop[0])+1)
	}
	return 0, fmt.Errorf("%w: input control %d", ErrInvalidIndex, int(con))
}

func controlRange(from, to Control) (r []Control) {
	for c := from; c < to; c++ {
		r = append(r, c)
	}
	return
}
