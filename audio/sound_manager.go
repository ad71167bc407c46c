package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

// speakerBuffer is the device buffer length handed to speaker.Init
const speakerBuffer = 100 * time.Millisecond

// SoundManager plays synthesized effects through a single mixer
// Every method is safe before Initialize and after Cleanup; they become no-ops
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	log         *zap.Logger
	initialized bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager; cfg nil uses defaults
func NewSoundManager(cfg *AudioConfig, log *zap.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	cfg.Normalize()
	if log == nil {
		log = zap.NewNop()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		log:   log,
	}
}

// Initialize opens the output device; disabled configs skip it
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(speakerBuffer)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.Info("audio initialized", zap.Int("sample_rate", sm.cfg.SampleRate), zap.Float64("volume", sm.cfg.MasterVolume))
	return nil
}

// Cleanup stops all sounds and releases the device
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayMunch plays the consumption chomp
func (sm *SoundManager) PlayMunch(points int) {
	sm.play(SoundMunch, func() beep.Streamer { return CreateMunchSound(sm.cfg, points) })
}

// PlayFanfare plays the milestone arpeggio
func (sm *SoundManager) PlayFanfare() {
	sm.play(SoundFanfare, func() beep.Streamer { return CreateFanfareSound(sm.cfg) })
}

// Played returns how many times a sound reached the mixer
func (sm *SoundManager) Played(s SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if s < 0 || s >= soundTypeCount {
		return 0
	}
	return sm.played[s]
}

func (sm *SoundManager) play(s SoundType, build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := build()
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	sm.played[s]++
}
