//go:build linux

package hotkeys

import (
	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// X11 keycodes under the evdev driver.
var x11Keys = map[Keycode]byte{
	Key1: 10,
	Key2: 11,
	Key3: 12,
	F1:   67,
	F2:   68,
	F3:   69,
}

// DeviceSource polls the X server keymap for the bindable keys.
type DeviceSource struct {
	conn *xgb.Conn
}

// NewDeviceSource connects to the X server named by $DISPLAY.
func NewDeviceSource() (*DeviceSource, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, err
	}
	return &DeviceSource{conn: conn}, nil
}

// PressedKeys queries the 256-bit keymap and returns every bindable key
// whose bit is set.
func (s *DeviceSource) PressedKeys() ([]Keycode, error) {
	reply, err := xproto.QueryKeymap(s.conn).Reply()
	if err != nil {
		return nil, err
	}

	var keys []Keycode
	for k, code := range x11Keys {
		if int(code/8) < len(reply.Keys) && reply.Keys[code/8]&(1<<(code%8)) != 0 {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

// Close drops the X connection.
func (s *DeviceSource) Close() {
	s.conn.Close()
}
