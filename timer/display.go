package timer

// Display is the set of flags pushed to the UI for one item.
type Display struct {
	Seconds  int
	Active   bool
	Warning  bool
	Critical bool
}

// NewDisplay derives the display flags from an observation using the fixed
// WarningThreshold and CriticalThreshold.
func NewDisplay(o Observation) Display {
	return Display{
		Seconds:  int(o.Left),
		Active:   o.Running && o.Left > 0,
		Warning:  o.Left <= WarningThreshold,
		Critical: o.Left <= CriticalThreshold,
	}
}
