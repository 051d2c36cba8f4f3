package control

import (
	"context"
	"sort"
	"time"

	"QuakeTools/timer"
)

// RefreshInterval is the UI refresh period.
const RefreshInterval = 100 * time.Millisecond

// Tracked is one countdown the refresh loop renders.
type Tracked struct {
	timer.ItemConfig
	Timer *timer.Shared
}

// Refresher reads every tracked countdown and pushes its display values to
// the surface. It is the only place where expiry is detected.
type Refresher struct {
	handle  Handle
	tracked []Tracked

	// OnExpired, if set, is called once per tick with the highest priority
	// item that expired during that tick. It runs with no lock held.
	OnExpired func(timer.Item)
}

// NewRefresher creates a refresher over the given countdowns.
func NewRefresher(h Handle, tracked ...Tracked) *Refresher {
	return &Refresher{handle: h, tracked: tracked}
}

// NewRefresherFromRegistry tracks every item in the registry.
func NewRefresherFromRegistry(h Handle, r *timer.Registry) *Refresher {
	var tracked []Tracked
	for _, cfg := range r.Items() {
		tracked = append(tracked, Tracked{ItemConfig: cfg, Timer: r.Get(cfg.Item)})
	}
	return NewRefresher(h, tracked...)
}

// Tick performs one refresh. It does nothing when the surface is gone.
func (r *Refresher) Tick() {
	s, ok := r.handle.Acquire()
	if !ok {
		return
	}

	var expired []Tracked
	for _, t := range r.tracked {
		o := t.Timer.Observe()
		if o.Expired {
			expired = append(expired, t)
		}
		Push(s, t.Item, timer.NewDisplay(o))
	}

	if len(expired) > 0 && r.OnExpired != nil {
		sort.SliceStable(expired, func(i, j int) bool {
			return expired[i].Priority > expired[j].Priority
		})
		r.OnExpired(expired[0].Item)
	}
}

// Run ticks every RefreshInterval until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Tick()
		}
	}
}
