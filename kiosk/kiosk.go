// Package kiosk turns a loaded config into the parts every host binary needs
package kiosk

import (
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/goldenmunch/attract/audio"
	"github.com/goldenmunch/attract/config"
	"github.com/goldenmunch/attract/engine"
	"github.com/goldenmunch/attract/idle"
	"github.com/goldenmunch/attract/parameter"
	"github.com/goldenmunch/attract/render"
	"github.com/goldenmunch/attract/scoring"
)

// Kit holds the resolved tuning, score rule and sound output
type Kit struct {
	Config *config.Config
	Tuning parameter.Tuning
	Rule   scoring.Rule
	Sound  *audio.SoundManager
	Log    *zap.Logger

	closers []func()
}

// Assemble resolves tuning, loads the score script and opens audio
// Audio failures are logged and leave the kit silent
func Assemble(cfg *config.Config, log *zap.Logger) (*Kit, error) {
	if log == nil {
		log = zap.NewNop()
	}
	profiles, err := parameter.LoadProfiles(nil)
	if err != nil {
		return nil, err
	}
	tuning, err := cfg.ResolveTuning(profiles)
	if err != nil {
		return nil, err
	}

	k := &Kit{Config: cfg, Tuning: tuning, Log: log}

	formula := scoring.FromTuning(tuning.Score)
	k.Rule = formula
	if cfg.ScoreScript != "" {
		lr, err := scoring.NewLuaRule(cfg.ScoreScript, formula, log)
		if err != nil {
			return nil, fmt.Errorf("score script: %w", err)
		}
		k.Rule = lr
		k.closers = append(k.closers, lr.Close)
	}

	ac := audio.DefaultAudioConfig()
	ac.Enabled = cfg.Audio.Enabled
	ac.MasterVolume = cfg.Audio.Volume
	ac.SampleRate = cfg.Audio.SampleRate
	k.Sound = audio.NewSoundManager(ac, log)
	if err := k.Sound.Initialize(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	k.closers = append(k.closers, k.Sound.Cleanup)

	log.Info("kiosk assembled",
		zap.String("profile", cfg.Profile),
		zap.Bool("scripted_score", cfg.ScoreScript != ""),
		zap.Bool("audio", cfg.Audio.Enabled))
	return k, nil
}

// Options builds simulation options for a host
func (k *Kit) Options(host engine.FrameHost, surface render.Surface, onExit func(route string)) idle.Options {
	var rng *rand.Rand
	if k.Config.Seed != 0 {
		rng = rand.New(rand.NewSource(k.Config.Seed))
	}
	return idle.Options{
		Tuning:  k.Tuning,
		Host:    host,
		Surface: surface,
		Stage: render.StageOptions{
			Locale: k.Config.Locale,
			HUD:    true,
			Hint:   k.Config.Hint,
		},
		Rule:      k.Rule,
		ExitRoute: k.Config.ExitRoute,
		OnExit:    onExit,
		Handlers:  []engine.Handler{audio.NewHandler(k.Sound)},
		Rand:      rng,
		Logger:    k.Log,
	}
}

// Close releases the score script and audio device in reverse order
func (k *Kit) Close() {
	for i := len(k.closers) - 1; i >= 0; i-- {
		k.closers[i]()
	}
	k.closers = nil
}
