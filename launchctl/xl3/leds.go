package xl3

import (
	"go.uber.org/zap"
)

// LEDs sets the RGB LEDs of a Device. Calls are best effort: invalid
// indices and send failures are logged, and nothing is sent while the
// device is disconnected.
type LEDs struct {
	port port
	log  *zap.Logger
}

func newLEDs(p port, log *zap.Logger) *LEDs {
	return &LEDs{port: p, log: log}
}

// SetLED sets the LED at a control index (5-52). Channels outside
// 0-127 are clamped; an index outside 5-52 is rejected.
func (l *LEDs) SetLED(index int, c Color) {
	if !l.port.connected() {
		return
	}

	c = c.Clamp()
	if !ValidControlIndex(index) {
		l.log.Warn("invalid control index",
			zap.Int("index", index),
			zap.Error(ErrInvalidIndex))
		return
	}

	frame := Frame(CommandLED, SubcommandRGB, byte(index), byte(c.R), byte(c.G), byte(c.B))
	if err := l.port.send(frame); err != nil {
		l.log.Error("failed to send LED", zap.Int("index", index), zap.Error(err))
	}
}

// SetButtonLED sets button num (1-16); 1-8 are the top row, 9-16 the
// bottom row.
func (l *LEDs) SetButtonLED(num int, c Color) {
	l.setClassLED(ClassButton, num, c)
}

// SetEncoderLED sets encoder num (1-24); 1-8 are the top row, 9-16
// the middle row, 17-24 the bottom row.
func (l *LEDs) SetEncoderLED(num int, c Color) {
	l.setClassLED(ClassEncoder, num, c)
}

// SetFaderLED sets fader num (1-8).
func (l *LEDs) SetFaderLED(num int, c Color) {
	l.setClassLED(ClassFader, num, c)
}

func (l *LEDs) setClassLED(class ControlClass, num int, c Color) {
	index, err := ControlIndex(class, num)
	if err != nil {
		l.log.Warn("invalid control number", zap.Stringer("class", class), zap.Int("number", num), zap.Error(err))
		return
	}
	l.SetLED(index, c)
}

// SetTopButtonRowLEDs sets buttons 1-8, one message each.
func (l *LEDs) SetTopButtonRowLEDs(c Color) {
	for i := 1; i <= 8; i++ {
		l.SetButtonLED(i, c)
	}
}

// SetBottomButtonRowLEDs sets buttons 9-16, one message each.
func (l *LEDs) SetBottomButtonRowLEDs(c Color) {
	for i := 9; i <= 16; i++ {
		l.SetButtonLED(i, c)
	}
}

// ClearAllLEDs turns off every LED, one message per control index.
func (l *LEDs) ClearAllLEDs() {
	for i := ControlIndexFirst; i <= ControlIndexLast; i++ {
		l.SetLED(i, ColorOff)
	}
}
