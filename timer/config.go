package timer

import (
	"image/color"
)

// Item identifies a tracked pickup.
type Item int

const (
	Megahealth Item = iota
	RedArmor
)

// String returns the display name of the item.
func (i Item) String() string {
	switch i {
	case Megahealth:
		return "Megahealth"
	case RedArmor:
		return "Red Armor"
	}
	return "Unknown"
}

// Display thresholds in seconds. These are fixed and do not follow the
// thresholds stored in the configuration file.
const (
	WarningThreshold  uint32 = 10
	CriticalThreshold uint32 = 5
)

// UI constants
const (
	FontSize     float32 = 18.0 // Item name
	FontSizeTime float32 = 34.0 // Countdown

	// Dimensions
	ItemWidth    = 200
	ItemHeight   = 110
	ItemSpacing  = 4
	CornerRadius = 8.0
)

var (
	// BackgroundColor is the base background color for item panels.
	BackgroundColor = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	// ActiveColor tints a running countdown.
	ActiveColor = color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}
	// WarningColor tints a running countdown at or below WarningThreshold.
	WarningColor = color.NRGBA{R: 0xf9, G: 0xa8, B: 0x25, A: 0xff}
	// CriticalColor tints a running countdown at or below CriticalThreshold.
	CriticalColor = color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}
)

// ItemConfig holds the static definition of a tracked item.
type ItemConfig struct {
	Item     Item
	Duration uint32 // seconds
	Priority int    // higher wins when several expire in the same tick
}

// DefaultItems is the fixed item table, in display order.
var DefaultItems = []ItemConfig{
	{Item: Megahealth, Duration: 35, Priority: 2},
	{Item: RedArmor, Duration: 25, Priority: 1},
}
