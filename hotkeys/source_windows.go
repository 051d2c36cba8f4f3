//go:build windows

package hotkeys

import (
	"golang.org/x/sys/windows"
)

var virtualKeys = map[Keycode]uintptr{
	Key1: 0x31,
	Key2: 0x32,
	Key3: 0x33,
	F1:   0x70,
	F2:   0x71,
	F3:   0x72,
}

// DeviceSource polls GetAsyncKeyState for the bindable keys.
type DeviceSource struct {
	proc *windows.LazyProc
}

// NewDeviceSource loads user32.dll and resolves GetAsyncKeyState.
func NewDeviceSource() (*DeviceSource, error) {
	proc := windows.NewLazySystemDLL("user32.dll").NewProc("GetAsyncKeyState")
	if err := proc.Find(); err != nil {
		return nil, err
	}
	return &DeviceSource{proc: proc}, nil
}

// PressedKeys returns every bindable key whose high bit is set.
func (s *DeviceSource) PressedKeys() ([]Keycode, error) {
	var keys []Keycode
	for k, vk := range virtualKeys {
		r, _, _ := s.proc.Call(vk)
		if r&0x8000 != 0 {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Close is a no-op on Windows.
func (s *DeviceSource) Close() {}
