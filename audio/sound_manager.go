package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/clack/constant"
)

const sampleRate = beep.SampleRate(constant.AudioSampleRate)

// SoundManager plays collision clacks through the system speaker
// All methods are safe without Initialize; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	volume      float64 // linear master volume in [0, 1]
	muted       bool
	initialized bool
}

// NewSoundManager creates a sound manager with the given linear master volume
func NewSoundManager(volume float64) *SoundManager {
	mixer := &beep.Mixer{}
	sm := &SoundManager{
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2},
	}
	sm.applyVolume(volume)
	return sm
}

// Initialize sets up the audio device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constant.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.master)
	sm.initialized = true
	return nil
}

// Cleanup silences the mixer; beep has no speaker close, clearing streamers avoids artifacts
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// PlayCollisions queues one clack for a frame that resolved n collisions
func (sm *SoundManager) PlayCollisions(n int) {
	if n <= 0 {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	tone, err := NewClackGenerator(sampleRate, constant.ClackToneHz, constant.ClackDecayRate, constant.ClackDuration)
	if err != nil {
		log.Printf("[audio] %v", err)
		return
	}
	clack := &effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   clackGain(n, constant.ClackVolumeStep, constant.ClackVolumeMax),
	}

	speaker.Lock()
	sm.mixer.Add(clack)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	sm.withSpeaker(func() {
		sm.master.Silent = sm.muted || sm.volume == 0
	})
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// SetVolume sets the linear master volume, clamped to [0, 1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.withSpeaker(func() { sm.applyVolume(v) })
}

// Volume returns the linear master volume
func (sm *SoundManager) Volume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.volume
}

// applyVolume converts linear volume to the base-2 exponent effects.Volume expects
func (sm *SoundManager) applyVolume(v float64) {
	if v < 0 || math.IsNaN(v) {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	sm.volume = v
	if v == 0 {
		sm.master.Volume = 0
		sm.master.Silent = true
		return
	}
	sm.master.Volume = math.Log2(v)
	sm.master.Silent = sm.muted
}

// withSpeaker runs fn holding the speaker lock when the device is running
func (sm *SoundManager) withSpeaker(fn func()) {
	if sm.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	fn()
}
