package control

import (
	"QuakeTools/timer"
)

// Bind registers the four start/reset handlers on the surface. Each handler
// is a single locked call on its countdown; the change shows up on the next
// refresh tick.
func Bind(cb Callbacks, megahealth, redArmor *timer.Shared) {
	cb.OnStartMegahealthTimer(megahealth.Start)
	cb.OnResetMegahealthTimer(megahealth.Reset)
	cb.OnStartRedArmorTimer(redArmor.Start)
	cb.OnResetRedArmorTimer(redArmor.Reset)
}
