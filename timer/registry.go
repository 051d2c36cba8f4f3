package timer

// Registry owns one Shared countdown per tracked item. It is populated once
// and is read-only afterwards.
type Registry struct {
	configs []ItemConfig
	timers  map[Item]*Shared
}

// NewRegistry creates an idle countdown for every definition.
func NewRegistry(defs []ItemConfig, clock Clock) *Registry {
	r := &Registry{timers: make(map[Item]*Shared, len(defs))}
	for _, d := range defs {
		r.configs = append(r.configs, d)
		r.timers[d.Item] = NewShared(d.Duration, clock)
	}
	return r
}

// Get returns the countdown for an item, or nil when it is not tracked.
func (r *Registry) Get(item Item) *Shared {
	return r.timers[item]
}

// Items returns the item definitions in display order.
func (r *Registry) Items() []ItemConfig {
	out := make([]ItemConfig, len(r.configs))
	copy(out, r.configs)
	return out
}
