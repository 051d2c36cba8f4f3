package control

import (
	"context"
	"sync"
	"testing"
	"time"

	"QuakeTools/timer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	mu     sync.Mutex
	items  map[timer.Item]timer.Display
	pushes int

	startMega, resetMega, startRed, resetRed func()
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{items: make(map[timer.Item]timer.Display)}
}

func (f *fakeSurface) update(item timer.Item, fn func(*timer.Display)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := f.items[item]
	fn(&d)
	f.items[item] = d
	f.pushes++
}

func (f *fakeSurface) get(item timer.Item) timer.Display {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.items[item]
}

func (f *fakeSurface) SetMegahealthTimer(v int) {
	f.update(timer.Megahealth, func(d *timer.Display) { d.Seconds = v })
}
func (f *fakeSurface) SetIsMegahealthActive(v bool) {
	f.update(timer.Megahealth, func(d *timer.Display) { d.Active = v })
}
func (f *fakeSurface) SetIsMegahealthWarning(v bool) {
	f.update(timer.Megahealth, func(d *timer.Display) { d.Warning = v })
}
func (f *fakeSurface) SetIsMegahealthCritical(v bool) {
	f.update(timer.Megahealth, func(d *timer.Display) { d.Critical = v })
}
func (f *fakeSurface) SetRedArmorTimer(v int) {
	f.update(timer.RedArmor, func(d *timer.Display) { d.Seconds = v })
}
func (f *fakeSurface) SetIsRedArmorActive(v bool) {
	f.update(timer.RedArmor, func(d *timer.Display) { d.Active = v })
}
func (f *fakeSurface) SetIsRedArmorWarning(v bool) {
	f.update(timer.RedArmor, func(d *timer.Display) { d.Warning = v })
}
func (f *fakeSurface) SetIsRedArmorCritical(v bool) {
	f.update(timer.RedArmor, func(d *timer.Display) { d.Critical = v })
}

func (f *fakeSurface) OnStartMegahealthTimer(fn func()) { f.startMega = fn }
func (f *fakeSurface) OnResetMegahealthTimer(fn func()) { f.resetMega = fn }
func (f *fakeSurface) OnStartRedArmorTimer(fn func())   { f.startRed = fn }
func (f *fakeSurface) OnResetRedArmorTimer(fn func())   { f.resetRed = fn }

type fakeHandle struct {
	mu      sync.Mutex
	surface *fakeSurface
	closed  bool
}

func (h *fakeHandle) Acquire() (Surface, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, false
	}
	return h.surface, true
}

type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type fixture struct {
	clock    *manualClock
	registry *timer.Registry
	surface  *fakeSurface
	handle   *fakeHandle
	refresh  *Refresher
	expired  []timer.Item
}

func newFixture() *fixture {
	f := &fixture{
		clock:   &manualClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		surface: newFakeSurface(),
	}
	f.registry = timer.NewRegistry(timer.DefaultItems, f.clock)
	f.handle = &fakeHandle{surface: f.surface}
	f.refresh = NewRefresherFromRegistry(f.handle, f.registry)
	f.refresh.OnExpired = func(i timer.Item) { f.expired = append(f.expired, i) }
	Bind(f.surface, f.registry.Get(timer.Megahealth), f.registry.Get(timer.RedArmor))
	return f
}

func TestTickIdle(t *testing.T) {
	f := newFixture()
	f.refresh.Tick()

	assert.Equal(t, timer.Display{Seconds: 35}, f.surface.get(timer.Megahealth))
	assert.Equal(t, timer.Display{Seconds: 25}, f.surface.get(timer.RedArmor))
}

func TestCallbacksDriveTimers(t *testing.T) {
	f := newFixture()

	f.surface.startMega()
	f.clock.Advance(26 * time.Second)
	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 9, Active: true, Warning: true}, f.surface.get(timer.Megahealth))
	assert.Equal(t, timer.Display{Seconds: 25}, f.surface.get(timer.RedArmor))

	f.surface.resetMega()
	f.surface.startRed()
	f.clock.Advance(20 * time.Second)
	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 35}, f.surface.get(timer.Megahealth))
	assert.Equal(t, timer.Display{Seconds: 5, Active: true, Warning: true, Critical: true}, f.surface.get(timer.RedArmor))

	f.surface.resetRed()
	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 25}, f.surface.get(timer.RedArmor))
}

func TestCallbackEffectWaitsForTick(t *testing.T) {
	f := newFixture()
	f.refresh.Tick()
	pushes := f.surface.pushes

	f.surface.startRed()
	assert.Equal(t, pushes, f.surface.pushes)
	assert.False(t, f.surface.get(timer.RedArmor).Active)

	f.refresh.Tick()
	assert.True(t, f.surface.get(timer.RedArmor).Active)
}

func TestTickResetsExpiredTimer(t *testing.T) {
	f := newFixture()
	red := f.registry.Get(timer.RedArmor)

	f.surface.startRed()
	f.clock.Advance(24*time.Second + 900*time.Millisecond)
	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 1, Active: true, Warning: true, Critical: true}, f.surface.get(timer.RedArmor))
	assert.True(t, red.Snapshot().Running)
	assert.Empty(t, f.expired)

	f.clock.Advance(100 * time.Millisecond)
	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 0, Warning: true, Critical: true}, f.surface.get(timer.RedArmor))
	assert.Equal(t, []timer.Item{timer.RedArmor}, f.expired)

	snap := red.Snapshot()
	assert.False(t, snap.Running)
	assert.Equal(t, uint32(25), snap.Left)

	f.refresh.Tick()
	assert.Equal(t, timer.Display{Seconds: 25}, f.surface.get(timer.RedArmor))
	assert.Len(t, f.expired, 1)
}

func TestTickReportsHighestPriorityExpiry(t *testing.T) {
	f := newFixture()
	f.surface.startRed()
	f.clock.Advance(10 * time.Second)
	f.surface.startMega()
	f.clock.Advance(35 * time.Second)

	f.refresh.Tick()
	assert.Equal(t, []timer.Item{timer.Megahealth}, f.expired)
	assert.False(t, f.registry.Get(timer.Megahealth).Snapshot().Running)
	assert.False(t, f.registry.Get(timer.RedArmor).Snapshot().Running)
}

func TestTickAfterSurfaceClosed(t *testing.T) {
	f := newFixture()
	f.surface.startMega()
	f.clock.Advance(40 * time.Second)

	f.handle.closed = true
	require.NotPanics(t, f.refresh.Tick)
	assert.Zero(t, f.surface.pushes)
	assert.True(t, f.registry.Get(timer.Megahealth).Snapshot().Running)
}

func TestRunTicksUntilCancelled(t *testing.T) {
	f := newFixture()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.refresh.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return f.surface.get(timer.Megahealth).Seconds == 35
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresh loop did not stop")
	}
}
