package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/GamesFromRust/piston-shooty/logger"
)

// SoundManager owns the speaker and hands out named sound handles
// Handles stay valid across Initialize/Cleanup and play silently while the speaker is down
type SoundManager struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	sounds      map[string]*managedSound
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg Config) *SoundManager {
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		sounds: make(map[string]*managedSound),
	}
}

// Initialize sets up the audio system
// A disabled config leaves the manager silent without touching the device
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(speakerBufferDuration))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
// The speaker itself stays open; a later Initialize re-inits it
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

// Get returns the handle for a named sound, cached by name
// Unknown names yield a handle that never plays
func (sm *SoundManager) Get(name string) Sound {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, ok := sm.sounds[name]; ok {
		return s
	}
	s := &managedSound{manager: sm, name: name}
	sm.sounds[name] = s
	return s
}

// Initialized reports whether the speaker is running
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

func (sm *SoundManager) play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer, ok := newStreamer(name)
	if !ok {
		logger.Log.WithFields(logrus.Fields{"sound": name}).Warn("Unknown sound")
		return
	}

	speaker.Lock()
	sm.mixer.Add(newVolume(streamer, sm.cfg.MasterVolume))
	speaker.Unlock()
}

// managedSound is a handle bound to a SoundManager
type managedSound struct {
	manager *SoundManager
	name    string
}

func (s *managedSound) Play() {
	s.manager.play(s.name)
}
