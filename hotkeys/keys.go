// Package hotkeys samples the global keyboard state and turns key presses
// into timer starts.
package hotkeys

import (
	"errors"
)

// Keycode is a physical key the overlay can bind.
type Keycode int

const (
	Key1 Keycode = iota + 1
	Key2
	Key3
	F1
	F2
	F3
)

// ErrUnsupportedPlatform is returned by NewDeviceSource where no global key
// polling backend exists.
var ErrUnsupportedPlatform = errors.New("global key polling is not supported on this platform")

var names = map[string]Keycode{
	"Key1": Key1,
	"Key2": Key2,
	"Key3": Key3,
	"F1":   F1,
	"F2":   F2,
	"F3":   F3,
}

// Lookup maps a configured hotkey name to its key. Names are case sensitive.
func Lookup(name string) (Keycode, bool) {
	k, ok := names[name]
	return k, ok
}

func (k Keycode) String() string {
	for n, c := range names {
		if c == k {
			return n
		}
	}
	return "Unknown"
}

// KeySource reports the set of physical keys held down right now.
type KeySource interface {
	PressedKeys() ([]Keycode, error)
}
