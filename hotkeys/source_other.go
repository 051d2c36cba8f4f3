//go:build !windows && !linux

package hotkeys

// DeviceSource is unavailable on this platform.
type DeviceSource struct{}

// NewDeviceSource always fails with ErrUnsupportedPlatform.
func NewDeviceSource() (*DeviceSource, error) {
	return nil, ErrUnsupportedPlatform
}

// PressedKeys always fails with ErrUnsupportedPlatform.
func (s *DeviceSource) PressedKeys() ([]Keycode, error) {
	return nil, ErrUnsupportedPlatform
}

// Close is a no-op.
func (s *DeviceSource) Close() {}
