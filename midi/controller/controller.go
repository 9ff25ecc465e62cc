// Package controller holds the input-side types shared by control surface drivers.
package controller

// Control identifies one physical input control of a surface.
type Control int

// Value is a 7-bit MIDI data value in the range 0-127.
type Value uint8

// Color is an RGB triplet; each channel is meaningful in the range 0-127.
type Color struct {
	R, G, B int
}

// Callback is called when a Control's value changes.
type Callback func(midiChan int, control Control, value Value)

// Input is implemented by surfaces that deliver control changes.
type Input interface {
	AddCallback(con Control, cb Callback)

	Get(con Control) float64
}

// Float maps v onto [0, 1], placing the knob detent (64) at exactly 0.5.
func (v Value) Float() float64 {
	switch {
	case v == 0:
		return 0
	case v == 64:
		return 0.5
	case v >= 127:
		return 1
	case v < 64:
		return float64(v) / 128
	default:
		return 0.5 + float64(v-64)/126
	}
}

// Clamp limits each channel of c to the 7-bit range 0-127.
func (c Color) Clamp() Color {
	return Color{R: clamp7(c.R), G: clamp7(c.G), B: clamp7(c.B)}
}

func clamp7(v int) int {
	switch {
	case v < 0:
		return 0
	case v > 127:
		return 127
	}
	return v
}
