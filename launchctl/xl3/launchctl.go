// Copyright 2013 Google Inc. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package xl3 provides interfaces to talk to Novation Launch Control XL 3 via MIDI in and out.
//
// In Custom Mode the surface is read through its main input port using
// the device's fixed control change numbers. In DAW Mode the DAW ports
// are used instead and the RGB LEDs and OLED display can be driven with
// SysEx messages through LEDs and Display.
package xl3

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmacd/launchxl3/midi/controller"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	DeviceName = "Launch Control XL 3"

	ValueUninitialized Value = 128
)

type (
	// Value is the value of any of the Control variables, in the range 0-127.
	// The special value `ValueUninitialized` (128) is used before the first
	// change of a control is received.
	Value = controller.Value

	// Color is an RGB triplet with channels in the range 0-127.
	Color = controller.Color

	// Control indexes are assigned in the range [0, NumControls).
	Control = controller.Control

	// Callback is called when Control values change. Register with AddCallback.
	Callback = controller.Callback
)

// Mode selects how the surface is driven.
type Mode int

const (
	ModeCustom Mode = iota // main port, generic MIDI only
	ModeDaw                // DAW ports, MIDI plus LEDs and display
)

func (m Mode) String() string {
	switch m {
	case ModeCustom:
		return "custom"
	case ModeDaw:
		return "daw"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// LaunchControl represents a device with an input port for control
// changes and, in DAW Mode, a Device for LED and display output.
type LaunchControl struct {
	opts   options
	log    *zap.Logger
	device *Device

	inputDriver drivers.In
	mode        Mode
	dawActive   bool

	lock      sync.Mutex
	errorChan chan error
	stopFn    func()

	value [NumControls]Value      // control values [0-127] or uninitialized
	calls [NumControls][]Callback // per-control callbacks
}

var _ controller.Input = (*LaunchControl)(nil)

// New returns a LaunchControl that has not been set up.
func New(opts ...Option) *LaunchControl {
	o := newOptions(opts)
	l := &LaunchControl{
		opts:      o,
		log:       o.logger.Named("launchctl"),
		device:    NewDevice(opts...),
		errorChan: make(chan error, 1),
	}
	for cc := Control(0); cc < NumControls; cc++ {
		l.value[cc] = ValueUninitialized
	}
	return l
}

// Open returns a LaunchControl set up in the given mode.
func Open(mode Mode, opts ...Option) (*LaunchControl, error) {
	l := New(opts...)
	if err := l.Setup(mode); err != nil {
		return nil, err
	}
	return l, nil
}

// Setup opens the input port for mode.
func (l *LaunchControl) Setup(mode Mode) error {
	switch mode {
	case ModeCustom:
		return l.SetupCustom()
	case ModeDaw:
		return l.SetupDaw()
	}
	return fmt.Errorf("launchctl: unknown mode %d", int(mode))
}

// SetupCustom opens the main input port. DAW ports are skipped so the
// device keeps its Custom Mode mappings; a Device left in DAW mode by an
// earlier setup is shut down.
func (l *LaunchControl) SetupCustom() error {
	in, ok := findPort(l.opts.ports.Ins(), IsMainPortName)
	if !ok {
		l.log.Error("automatic setup error, Launch Control XL 3 not found")
		return fmt.Errorf("%w: no main input port", ErrPortNotFound)
	}
	if err := l.openInput(in); err != nil {
		return err
	}
	if l.device.IsConnected() {
		if err := l.device.Shutdown(); err != nil {
			l.log.Warn("failed to shut down DAW output", zap.Error(err))
		}
	}
	l.mode = ModeCustom
	l.dawActive = false
	return nil
}

// SetupDaw opens the DAW input port and sets up the Device, enabling
// DAW mode. If the Device cannot be set up the input still works; the
// failure is logged and LED and display calls do nothing.
func (l *LaunchControl) SetupDaw() error {
	in, ok := findPort(l.opts.ports.Ins(), IsDawPortName)
	if !ok {
		l.log.Error("DAW input port not found")
		return fmt.Errorf("%w: no DAW input port", ErrPortNotFound)
	}
	l.log.Info("found DAW input port", zap.String("port", in.String()), zap.Int("number", in.Number()))
	if err := l.openInput(in); err != nil {
		return err
	}

	if err := l.device.Setup(true); err != nil {
		l.log.Warn("LED controller setup failed, but MIDI input may still work", zap.Error(err))
	}

	l.mode = ModeDaw
	l.dawActive = true
	l.log.Info("DAW mode setup complete")
	return nil
}

func (l *LaunchControl) openInput(in drivers.In) error {
	if l.inputDriver != nil {
		if err := l.closeInput(); err != nil {
			l.log.Warn("failed to close previous input port", zap.Error(err))
		}
	}
	if err := in.Open(); err != nil {
		l.log.Error("failed to open input port", zap.String("port", in.String()), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", ErrTransportOpenFailed, in.String(), err)
	}
	l.inputDriver = in
	return nil
}

// Run begins listening for updates, blocking the caller until the
// context is canceled or the driver reports an error.
func (l *LaunchControl) Run(ctx context.Context) error {
	if l.inputDriver == nil {
		return ErrNotConnected
	}

	lcfg := drivers.ListenConfig{
		TimeCode:    false,
		ActiveSense: false,
		SysEx:       true,
		OnErr: func(err error) {
			_ = l.handleError(err)
		},
	}

	stop, err := l.inputDriver.Listen(func(msg []byte, milliseconds int32) {
		l.message(msg, milliseconds)
	}, lcfg)
	if err != nil {
		return fmt.Errorf("midi: listen: %w", err)
	}

	l.lock.Lock()
	l.stopFn = stop
	l.lock.Unlock()

	defer l.stopListening()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-l.errorChan:
		return err
	}
}

// AddCallback registers cb for changes of con.
func (l *LaunchControl) AddCallback(con Control, cb Callback) {
	if con < 0 || con >= NumControls {
		l.log.Error("wrong control, binding ignored", zap.Int("control", int(con)))
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	l.calls[con] = append(l.calls[con], cb)
}

// Button registers cb for button num (1-16).
func (l *LaunchControl) Button(num int, cb Callback) {
	l.bind(ButtonControl(num))(cb)
}

// Encoder registers cb for encoder num (1-24).
func (l *LaunchControl) Encoder(num int, cb Callback) {
	l.bind(EncoderControl(num))(cb)
}

// Fader registers cb for fader num (1-8).
func (l *LaunchControl) Fader(num int, cb Callback) {
	l.bind(FaderControl(num))(cb)
}

func (l *LaunchControl) bind(con Control, err error) func(Callback) {
	if err != nil {
		return func(Callback) {
			l.log.Error("wrong index, binding ignored", zap.Error(err))
		}
	}
	return func(cb Callback) {
		l.AddCallback(con, cb)
	}
}

// ClearCallbacks removes every callback of con.
func (l *LaunchControl) ClearCallbacks(con Control) {
	if con < 0 || con >= NumControls {
		return
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	l.calls[con] = nil
}

// ClearFaders removes the callbacks of all faders.
func (l *LaunchControl) ClearFaders() {
	for _, con := range ControlFader {
		l.ClearCallbacks(con)
	}
}

// Get returns the latest value of con mapped onto [0, 1]. Controls
// that have not moved yet read as 0.5.
func (l *LaunchControl) Get(con Control) float64 {
	if con < 0 || con >= NumControls {
		return 0.5
	}
	l.lock.Lock()
	defer l.lock.Unlock()

	v := l.value[con]
	if v == ValueUninitialized {
		return 0.5
	}
	return v.Float()
}

// Device returns the LED and display device. It is disconnected unless
// the surface was set up in DAW Mode.
func (l *LaunchControl) Device() *Device {
	return l.device
}

// LEDs returns the LED subsystem.
func (l *LaunchControl) LEDs() *LEDs {
	return l.device.LEDs()
}

// Display returns the display subsystem.
func (l *LaunchControl) Display() *Display {
	return l.device.Display()
}

// Mode returns the mode of the last successful setup.
func (l *LaunchControl) Mode() Mode {
	return l.mode
}

// DawModeActive reports whether the surface was set up in DAW Mode.
func (l *LaunchControl) DawModeActive() bool {
	return l.dawActive
}

// Close stops listening, closes the input port and shuts the Device
// down.
func (l *LaunchControl) Close() error {
	l.stopListening()

	var err error
	if l.inputDriver != nil {
		err = multierr.Append(err, l.closeInput())
	}
	err = multierr.Append(err, l.device.Shutdown())
	l.dawActive = false
	return err
}

func (l *LaunchControl) stopListening() {
	l.lock.Lock()
	stop := l.stopFn
	l.stopFn = nil
	l.lock.Unlock()

	if stop != nil {
		stop()
	}
}

func (l *LaunchControl) closeInput() error {
	in := l.inputDriver
	l.inputDriver = nil
	if err := in.Close(); err != nil {
		return fmt.Errorf("midi: close input: %w", err)
	}
	return nil
}

func (l *LaunchControl) handleError(err error) error {
	if err == nil {
		return err
	}
	select {
	case l.errorChan <- err:
	default:
	}
	return err
}
