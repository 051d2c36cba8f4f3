// Package control connects the timer registry to the UI surface: the
// periodic refresh that pushes countdowns out, and the callbacks that let
// button presses reach the timers.
package control

import (
	"QuakeTools/timer"
)

// Properties are the display values the refresh loop pushes each tick.
type Properties interface {
	SetMegahealthTimer(seconds int)
	SetIsMegahealthActive(bool)
	SetIsMegahealthWarning(bool)
	SetIsMegahealthCritical(bool)

	SetRedArmorTimer(seconds int)
	SetIsRedArmorActive(bool)
	SetIsRedArmorWarning(bool)
	SetIsRedArmorCritical(bool)
}

// Callbacks are the interaction hooks the core registers at startup.
type Callbacks interface {
	OnStartMegahealthTimer(func())
	OnResetMegahealthTimer(func())
	OnStartRedArmorTimer(func())
	OnResetRedArmorTimer(func())
}

// Surface is the full contract of the UI collaborator.
type Surface interface {
	Properties
	Callbacks
}

// Handle is a weak reference to the surface. Acquire reports false once the
// window has been torn down.
type Handle interface {
	Acquire() (Surface, bool)
}

// Push writes one item's display values to the surface.
func Push(p Properties, item timer.Item, d timer.Display) {
	switch item {
	case timer.Megahealth:
		p.SetMegahealthTimer(d.Seconds)
		p.SetIsMegahealthActive(d.Active)
		p.SetIsMegahealthWarning(d.Warning)
		p.SetIsMegahealthCritical(d.Critical)
	case timer.RedArmor:
		p.SetRedArmorTimer(d.Seconds)
		p.SetIsRedArmorActive(d.Active)
		p.SetIsRedArmorWarning(d.Warning)
		p.SetIsRedArmorCritical(d.Critical)
	}
}
