package usecase

import (
	"context"
	"fmt"

	"github.com/spf13/cast"

	"github.com/bnema/devconf/internal/domain/document"
)

// CLIConfig is the subset of device settings the command-line client reads.
type CLIConfig struct {
	LogDir           string `json:"log_dir"`
	CoreVersion      string `json:"neon_core_version"`
	WakeWordsEnabled bool   `json:"wake_words_enabled"`
}

// SpeechConfig is the view of device and user settings the speech service reads.
type SpeechConfig struct {
	Lang     string         `json:"lang"`
	Listener map[string]any `json:"listener"`
	Hotwords map[string]any `json:"hotwords"`
	STT      map[string]any `json:"stt"`
	TTS      map[string]any `json:"tts"`
}

// DerivedConfigUseCase builds service-specific views over the device-local
// and user documents.
type DerivedConfigUseCase struct {
	local *ConfigStore
	user  *ConfigStore
}

// NewDerivedConfigUseCase creates a new derived config use case.
func NewDerivedConfigUseCase(local, user *ConfigStore) *DerivedConfigUseCase {
	return &DerivedConfigUseCase{local: local, user: user}
}

// CLIConfig returns the command-line client view.
func (uc *DerivedConfigUseCase) CLIConfig(ctx context.Context) (*CLIConfig, error) {
	logDir, err := uc.local.GetString(ctx, document.KeyPath{"dirVars", "logsDir"}, "")
	if err != nil {
		return nil, err
	}
	version, err := uc.local.GetString(ctx, document.KeyPath{"devVars", "version"}, "")
	if err != nil {
		return nil, err
	}
	wakeWords, err := uc.local.GetBool(ctx, document.KeyPath{"interface", "wake_word_enabled"}, true)
	if err != nil {
		return nil, err
	}
	return &CLIConfig{LogDir: logDir, CoreVersion: version, WakeWordsEnabled: wakeWords}, nil
}

// SpeechConfig returns the speech service view. The language is the user's TTS
// language when set, otherwise the device GUI language.
func (uc *DerivedConfigUseCase) SpeechConfig(ctx context.Context) (*SpeechConfig, error) {
	cfg := &SpeechConfig{}
	sections := map[string]*map[string]any{
		"listener": &cfg.Listener,
		"hotwords": &cfg.Hotwords,
		"stt":      &cfg.STT,
		"tts":      &cfg.TTS,
	}
	for name, dst := range sections {
		v, err := uc.local.Get(ctx, document.KeyPath{name}, map[string]any{})
		if err != nil {
			return nil, err
		}
		section, err := cast.ToStringMapE(v)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		*dst = section
	}

	lang, err := uc.local.GetString(ctx, document.KeyPath{"gui", "lang"}, "en-us")
	if err != nil {
		return nil, err
	}
	if uc.user != nil {
		userLang, err := uc.user.GetString(ctx, document.KeyPath{"speech", "tts_language"}, "")
		if err != nil {
			return nil, err
		}
		if userLang != "" {
			lang = userLang
		}
	}
	cfg.Lang = lang
	return cfg, nil
}
