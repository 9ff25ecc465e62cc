package xl3

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errFake = errors.New("fake port failure")

type fakePort struct {
	name     string
	number   int
	open     bool
	openErr  error
	closeErr error
	opens    int
	closes   int
}

func (p *fakePort) Open() error {
	if p.openErr != nil {
		return p.openErr
	}
	p.open = true
	p.opens++
	return nil
}

func (p *fakePort) Close() error {
	p.open = false
	p.closes++
	return p.closeErr
}

func (p *fakePort) IsOpen() bool            { return p.open }
func (p *fakePort) Number() int             { return p.number }
func (p *fakePort) String() string          { return p.name }
func (p *fakePort) Underlying() interface{} { return nil }

// fakeOut records every message sent to it.
type fakeOut struct {
	fakePort
	sent    [][]byte
	sendErr error
}

func (o *fakeOut) Send(data []byte) error {
	if o.sendErr != nil {
		return o.sendErr
	}
	o.sent = append(o.sent, append([]byte(nil), data...))
	return nil
}

// fakeIn hands its listener back to the test.
type fakeIn struct {
	fakePort
	listener func(msg []byte, milliseconds int32)
	config   drivers.ListenConfig
	stopped  bool
}

func (i *fakeIn) Listen(onMsg func(msg []byte, milliseconds int32), config drivers.ListenConfig) (func(), error) {
	i.listener = onMsg
	i.config = config
	return func() { i.stopped = true }, nil
}

type fakePorts struct {
	ins  []drivers.In
	outs []drivers.Out
}

func (p *fakePorts) Ins() []drivers.In   { return p.ins }
func (p *fakePorts) Outs() []drivers.Out { return p.outs }

// newFakeHardware returns ports as a connected Launch Control XL 3
// presents them.
func newFakeHardware() (*fakePorts, *fakeIn, *fakeIn, *fakeOut) {
	mainIn := &fakeIn{fakePort: fakePort{name: "LCXL3 1 MIDI In", number: 0}}
	dawIn := &fakeIn{fakePort: fakePort{name: "LCXL3 1 DAW In", number: 1}}
	mainOut := &fakeOut{fakePort: fakePort{name: "LCXL3 1 MIDI Out", number: 0}}
	dawOut := &fakeOut{fakePort: fakePort{name: "LCXL3 1 DAW Out", number: 1}}
	ports := &fakePorts{
		ins:  []drivers.In{mainIn, dawIn},
		outs: []drivers.Out{mainOut, dawOut},
	}
	return ports, mainIn, dawIn, dawOut
}

func newObservedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

// newConnectedDevice returns a device in DAW mode with the handshake
// already cleared from the recorded output.
func newConnectedDevice(t *testing.T, opts ...Option) (*Device, *fakeOut) {
	t.Helper()
	ports, _, _, out := newFakeHardware()
	opts = append([]Option{WithPorts(ports), WithSettleDelay(0)}, opts...)
	d := NewDevice(opts...)
	require.NoError(t, d.Setup(true))
	require.Equal(t, StateDawMode, d.State())
	out.sent = nil
	return d, out
}
