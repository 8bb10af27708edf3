package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/trig-visualization/internal/logging"
)

// SampleRate is the output rate of the speaker.
const SampleRate = beep.SampleRate(44100)

// Player owns the speaker and a muteable Tone.
type Player struct {
	tone     *Tone
	ctrl     *beep.Ctrl
	initDone bool
}

// NewPlayer returns a muted player around tone. The speaker is not
// touched until the first Enable.
func NewPlayer(tone *Tone) *Player {
	return &Player{
		tone: tone,
		ctrl: &beep.Ctrl{Streamer: tone, Paused: true},
	}
}

// Tone returns the streamed tone.
func (p *Player) Tone() *Tone { return p.tone }

// Enabled reports whether the tone is audible.
func (p *Player) Enabled() bool {
	if !p.initDone {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

// SetEnabled unmutes or mutes the tone, opening the audio device on
// first use.
func (p *Player) SetEnabled(on bool) error {
	if on && !p.initDone {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/20)); err != nil {
			return fmt.Errorf("open audio device: %w", err)
		}
		speaker.Play(p.ctrl)
		p.initDone = true
		logging.Logger().Info("audio device opened", "rate", int(SampleRate))
	}
	if !p.initDone {
		return nil
	}
	speaker.Lock()
	p.ctrl.Paused = !on
	speaker.Unlock()
	return nil
}

// Toggle flips the tone on or off and returns the new state.
func (p *Player) Toggle() (bool, error) {
	on := !p.Enabled()
	if err := p.SetEnabled(on); err != nil {
		return false, err
	}
	return on, nil
}
