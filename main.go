package main

import (
	"context"
	"log"
	"os"

	"QuakeTools/audio"
	"QuakeTools/config"
	"QuakeTools/hotkeys"
	"QuakeTools/ui"

	"fyne.io/fyne/v2/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Printf("Loaded config: megahealth %d/%d (%s), red armor %d/%d (%s)",
		cfg.MegahealthWarningThreshold, cfg.MegahealthCriticalThreshold, cfg.MegahealthHotkey,
		cfg.RedArmorWarningThreshold, cfg.RedArmorCriticalThreshold, cfg.RedArmorHotkey)

	keys, err := hotkeys.NewDeviceSource()
	if err != nil {
		log.Fatalf("Failed to open keyboard: %v", err)
	}
	defer keys.Close()

	fyneApp := app.New()
	fyneApp.Settings().SetTheme(ui.NewOverlayTheme())

	player := audio.NewPlayer(os.Getenv("QLTOOLS_MUTE") == "1")

	a, err := NewAppManager(fyneApp, cfg, keys, player)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.OnClosed(func() {
		cancel()
	})

	a.Start(ctx)

	a.Window().ShowAndRun()
}
