// Package audio plays synthesized game sounds through beep's speaker.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// SoundManager mixes game sounds into the speaker.
// Every Play method is a no-op until Initialize succeeds.
type SoundManager struct {
	logger *slog.Logger

	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager(logger *slog.Logger) *SoundManager {
	return &SoundManager{
		logger: logger.With("component", "audio"),
		mixer:  &beep.Mixer{},
	}
}

// Initialize - opens the audio device and starts the mixer.
func (that *SoundManager) Initialize() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(that.mixer)
	that.initialized = true

	return nil
}

// Cleanup - drops queued sounds and closes the speaker.
func (that *SoundManager) Cleanup() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	that.initialized = false
}

func (that *SoundManager) PlayMove(player entity.Player) {
	that.play("move", moveTone(player == entity.PlayerX))
}

func (that *SoundManager) PlayWin() {
	that.play("win", winJingle())
}

func (that *SoundManager) PlayDraw() {
	that.play("draw", drawJingle())
}

func (that *SoundManager) PlayReject() {
	that.play("reject", rejectBuzz())
}

func (that *SoundManager) play(name string, streamer beep.Streamer) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	speaker.Lock()
	that.mixer.Add(streamer)
	speaker.Unlock()

	that.logger.Debug("Playing sound", "sound", name)
}
