package xl3

import (
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"
)

type Event struct {
	Timestamp int32
	Channel   uint8
	Number    uint8
	Value     Value
}

// message decodes one raw message from the input driver.
func (l *LaunchControl) message(msg []byte, milliseconds int32) {
	if IsDeviceSysEx(msg) {
		l.log.Debug("device sysex ignored", zap.Binary("data", msg))
		return
	}

	var ch, cc, val uint8
	if !midi.Message(msg).GetControlChange(&ch, &cc, &val) {
		return
	}
	l.event(Event{
		Timestamp: milliseconds,
		Channel:   ch,
		Number:    cc,
		Value:     Value(val),
	})
}

// event records the value of every control bound to the event's CC
// number and runs their callbacks outside the lock.
func (l *LaunchControl) event(evt Event) {
	if l.opts.channel != 0 && int(evt.Channel) != l.opts.channel-1 {
		return
	}
	controls := ControlsForCC(evt.Number)
	if len(controls) == 0 {
		return
	}

	type call struct {
		con Control
		cbs []Callback
	}
	calls := make([]call, 0, len(controls))

	l.lock.Lock()
	for _, con := range controls {
		l.value[con] = evt.Value
		calls = append(calls, call{con, l.calls[con]})
	}
	l.lock.Unlock()

	for _, c := range calls {
		for _, cb := range c.cbs {
			cb(int(evt.Channel), c.con, evt.Value)
		}
	}
}
