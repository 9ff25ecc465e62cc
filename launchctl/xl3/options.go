package xl3

import (
	"time"

	"go.uber.org/zap"
)

// DefaultSettleDelay is how long the device is given after its port
// opens before the DAW mode handshake is sent.
const DefaultSettleDelay = 100 * time.Millisecond

type options struct {
	logger  *zap.Logger
	ports   Ports
	settle  time.Duration
	channel int
}

// Option configures a Device or LaunchControl.
type Option func(*options)

// WithLogger sets the logger. Components log under named children of it.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithPorts replaces the system port enumeration.
func WithPorts(p Ports) Option {
	return func(o *options) {
		o.ports = p
	}
}

// WithSettleDelay sets the delay between opening the DAW port and
// sending the first message.
func WithSettleDelay(d time.Duration) Option {
	return func(o *options) {
		o.settle = d
	}
}

// WithInputChannel restricts input to one MIDI channel (1-16). Zero
// accepts every channel.
func WithInputChannel(ch int) Option {
	return func(o *options) {
		o.channel = ch
	}
}

func newOptions(opts []Option) options {
	o := options{
		settle: DefaultSettleDelay,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.ports == nil {
		o.ports = SystemPorts()
	}
	if o.channel < 0 || o.channel > 16 {
		o.channel = 0
	}
	return o
}
