package xl3

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"
)

// State is the connection state of a Device.
type State int

const (
	StateDisconnected State = iota
	StateConnected          // port open, DAW mode not enabled
	StateDawMode            // port open, DAW mode handshake sent
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateDawMode:
		return "daw-mode"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Device owns the DAW output port of a Launch Control XL 3 and the
// DAW mode handshake. Its LED and display subsystems borrow the port
// and do nothing while the device is disconnected.
//
// Device is not safe for concurrent use.
type Device struct {
	opts options
	base *zap.Logger
	log  *zap.Logger

	out     drivers.Out
	state   State
	session string

	leds    *LEDs
	display *Display
}

// NewDevice returns a disconnected device.
func NewDevice(opts ...Option) *Device {
	o := newOptions(opts)
	d := &Device{
		opts: o,
		base: o.logger.Named("device"),
	}
	d.log = d.base
	d.leds = newLEDs(port{d}, o.logger.Named("leds"))
	d.display = newDisplay(port{d}, o.logger.Named("display"))
	return d
}

// Setup finds and opens the DAW output port. When enableDaw is true
// the DAW mode handshake follows; otherwise the device stays in Custom
// Mode and LED and display commands have no defined effect. Setup on a
// connected device does nothing.
func (d *Device) Setup(enableDaw bool) error {
	if d.state != StateDisconnected {
		return nil
	}

	out, ok := findPort(d.opts.ports.Outs(), IsDawPortName)
	if !ok {
		d.log.Warn("DAW port not found, LED control will be unavailable")
		return fmt.Errorf("%w: no DAW output port", ErrPortNotFound)
	}
	if err := out.Open(); err != nil {
		d.log.Error("failed to open DAW port", zap.String("port", out.String()), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrTransportOpenFailed, out.String(), err)
	}

	time.Sleep(d.opts.settle)

	d.out = out
	d.state = StateConnected
	d.session = uuid.NewString()
	d.log = d.base.With(zap.String("session", d.session))
	d.log.Info("found DAW port", zap.String("port", out.String()), zap.Int("number", out.Number()))

	if enableDaw {
		if err := d.EnableDawMode(); err != nil {
			return err
		}
	}

	d.log.Info("LED controller initialized", zap.Bool("daw", enableDaw))
	return nil
}

// EnableDawMode sends the DAW mode handshake. It does nothing unless
// the device is connected with DAW mode off.
func (d *Device) EnableDawMode() error {
	if d.state != StateConnected {
		return nil
	}
	if err := d.out.Send(midi.NoteOn(DawModeChannel, DawModeNote, DawModeEnableVelocity)); err != nil {
		d.log.Error("failed to enable DAW mode", zap.Error(err))
		return fmt.Errorf("midi: enable daw mode: %w", err)
	}
	d.state = StateDawMode
	d.log.Info("DAW mode enabled")
	return nil
}

// DisableDawMode reverses the DAW mode handshake. It does nothing
// unless DAW mode is enabled.
func (d *Device) DisableDawMode() error {
	if d.state != StateDawMode {
		return nil
	}
	if err := d.out.Send(midi.NoteOn(DawModeChannel, DawModeNote, DawModeDisableVelocity)); err != nil {
		d.log.Error("failed to disable DAW mode", zap.Error(err))
		return fmt.Errorf("midi: disable daw mode: %w", err)
	}
	d.state = StateConnected
	d.log.Info("DAW mode disabled")
	return nil
}

// Shutdown disables DAW mode if it is enabled, then closes the port.
// The device is disconnected afterwards even if either step failed;
// the close error, if any, is returned.
func (d *Device) Shutdown() error {
	if d.state == StateDisconnected {
		return nil
	}

	_ = d.DisableDawMode()
	err := d.out.Close()

	d.out = nil
	d.state = StateDisconnected
	d.session = ""
	if err != nil {
		d.log.Error("failed to close DAW port", zap.Error(err))
		err = fmt.Errorf("midi: close daw port: %w", err)
	}
	d.log.Info("LED controller shutdown")
	d.log = d.base
	return err
}

// State returns the connection state.
func (d *Device) State() State {
	return d.state
}

// IsConnected reports whether the DAW port is open.
func (d *Device) IsConnected() bool {
	return d.state != StateDisconnected
}

// DawModeEnabled reports whether the DAW mode handshake is in effect.
func (d *Device) DawModeEnabled() bool {
	return d.state == StateDawMode
}

// Session identifies the current connection. It is empty while
// disconnected.
func (d *Device) Session() string {
	return d.session
}

// LEDs returns the LED subsystem bound to this device.
func (d *Device) LEDs() *LEDs {
	return d.leds
}

// Display returns the display subsystem bound to this device.
func (d *Device) Display() *Display {
	return d.display
}

// port is the borrowed view of a device's output port. It can send
// but never opens or closes the port.
type port struct {
	d *Device
}

func (p port) connected() bool {
	return p.d.state != StateDisconnected && p.d.out != nil
}

func (p port) send(data []byte) error {
	if !p.connected() {
		return ErrNotConnected
	}
	return p.d.out.Send(data)
}
