package hotkeys

import (
	"context"
	"time"
)

// DefaultPollInterval is the keyboard sampling period.
const DefaultPollInterval = 50 * time.Millisecond

// Starter is anything a hotkey can arm. Hotkeys only start, never reset.
type Starter interface {
	Start()
}

// Binding ties a key to the countdown it starts.
type Binding struct {
	Key    Keycode
	Target Starter
}

// Listener polls a KeySource and starts a bound target on the rising edge
// of its key, so holding a key across several polls starts it once.
type Listener struct {
	source   KeySource
	interval time.Duration
	bindings []Binding
	last     map[Keycode]bool
}

// NewListener creates a listener. A non-positive interval selects
// DefaultPollInterval.
func NewListener(source KeySource, interval time.Duration, bindings ...Binding) *Listener {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Listener{
		source:   source,
		interval: interval,
		bindings: bindings,
		last:     make(map[Keycode]bool),
	}
}

// Poll takes one keyboard sample and fires the bindings whose key went from
// released to pressed since the previous sample.
func (l *Listener) Poll() error {
	keys, err := l.source.PressedKeys()
	if err != nil {
		return err
	}

	current := make(map[Keycode]bool, len(keys))
	for _, k := range keys {
		current[k] = true
	}

	for _, b := range l.bindings {
		if current[b.Key] && !l.last[b.Key] {
			b.Target.Start()
		}
	}

	l.last = current
	return nil
}

// Run sleeps one interval, then polls, until ctx is done or the key source
// fails. A key source failure is returned and is meant to be fatal.
func (l *Listener) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.interval):
		}

		if err := l.Poll(); err != nil {
			return err
		}
	}
}
