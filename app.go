// Package main wires the overlay together. The AppManager owns the timer
// registry and hands each concurrent actor exactly the handles it needs:
//   - the fyne UI thread runs the button callbacks registered by control.Bind;
//   - the refresh goroutine ticks every 100ms, detects expiry and pushes
//     display values through fyne.Do;
//   - the hotkey goroutine polls the keyboard every 50ms and only ever
//     starts timers.
//
// Each timer has its own mutex, held for a single start, reset or observe
// and never across a sleep or a UI push.
package main

import (
	"context"
	"fmt"
	"log"

	"QuakeTools/audio"
	"QuakeTools/config"
	"QuakeTools/control"
	"QuakeTools/hotkeys"
	"QuakeTools/timer"
	"QuakeTools/ui"

	"fyne.io/fyne/v2"
)

// AppManager is the main application struct, holding all state.
type AppManager struct {
	config    config.Config
	registry  *timer.Registry
	overlay   *ui.Overlay
	refresher *control.Refresher
	listener  *hotkeys.Listener
	player    *audio.Player
}

// NewAppManager builds every actor. An unsupported hotkey name is an error.
func NewAppManager(fyneApp fyne.App, cfg config.Config, keys hotkeys.KeySource, player *audio.Player) (*AppManager, error) {
	megaKey, ok := hotkeys.Lookup(cfg.MegahealthHotkey)
	if !ok {
		return nil, fmt.Errorf("unsupported megahealth hotkey %q", cfg.MegahealthHotkey)
	}
	redKey, ok := hotkeys.Lookup(cfg.RedArmorHotkey)
	if !ok {
		return nil, fmt.Errorf("unsupported red armor hotkey %q", cfg.RedArmorHotkey)
	}

	a := &AppManager{
		config:   cfg,
		registry: timer.NewRegistry(timer.DefaultItems, timer.SystemClock),
		player:   player,
	}
	mega := a.registry.Get(timer.Megahealth)
	red := a.registry.Get(timer.RedArmor)

	a.overlay = ui.CreateMainWindow(fyneApp, a.registry.Items())
	control.Bind(a.overlay, mega, red)

	a.refresher = control.NewRefresherFromRegistry(a.overlay, a.registry)
	a.refresher.OnExpired = a.alert

	a.listener = hotkeys.NewListener(keys, hotkeys.DefaultPollInterval,
		hotkeys.Binding{Key: megaKey, Target: mega},
		hotkeys.Binding{Key: redKey, Target: red},
	)
	return a, nil
}

func (a *AppManager) alert(item timer.Item) {
	log.Printf("%s is up", item)
	if a.player != nil {
		a.player.Play(item)
	}
}

// Start launches the refresh loop and the hotkey listener. A key source
// failure stops the process.
func (a *AppManager) Start(ctx context.Context) {
	go a.refresher.Run(ctx)
	go func() {
		if err := a.listener.Run(ctx); err != nil {
			log.Fatalf("Hotkey listener failed: %v", err)
		}
	}()
}

// Window returns the overlay window.
func (a *AppManager) Window() fyne.Window {
	return a.overlay.Window()
}

// OnClosed sets a function to run once the overlay window is closed.
func (a *AppManager) OnClosed(fn func()) {
	a.overlay.SetOnClosed(fn)
}
