// Package audio plays the expiry chime. Tones are synthesised, so no sound
// files are shipped.
package audio

import (
	"log"
	"sync"
	"time"

	"QuakeTools/timer"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the speaker sample rate.
const SampleRate beep.SampleRate = 44100

// Note is one tone of a chime.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Chimes are the note sequences played when an item respawns.
var Chimes = map[timer.Item][]Note{
	timer.Megahealth: {{Freq: 880, Duration: 120 * time.Millisecond}, {Freq: 1320, Duration: 180 * time.Millisecond}},
	timer.RedArmor:   {{Freq: 660, Duration: 120 * time.Millisecond}, {Freq: 990, Duration: 180 * time.Millisecond}},
}

// Player plays chimes through the system speaker.
type Player struct {
	lock    sync.Mutex
	enabled bool
}

// NewPlayer initialises the speaker. If it cannot be opened the player is
// returned disabled and Play is a no-op.
func NewPlayer(mute bool) *Player {
	p := &Player{}
	if mute {
		log.Printf("Audio muted")
		return p
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		log.Printf("Audio disabled: Failed to initialize speaker: %v", err)
		return p
	}
	p.enabled = true
	return p
}

// Play queues the chime for an item.
func (p *Player) Play(item timer.Item) {
	if !p.enabled {
		return
	}
	s, err := Tone(SampleRate, Chimes[item])
	if err != nil {
		log.Printf("Failed to build chime for %s: %v", item, err)
		return
	}

	p.lock.Lock()
	defer p.lock.Unlock()
	speaker.Play(s)
}

// Tone builds a finite streamer playing the notes back to back at a reduced
// volume.
func Tone(sr beep.SampleRate, notes []Note) (beep.Streamer, error) {
	var parts []beep.Streamer
	for _, n := range notes {
		sine, err := generators.SineTone(sr, n.Freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sr.N(n.Duration), sine))
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: -2}, nil
}
