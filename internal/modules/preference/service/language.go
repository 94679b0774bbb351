package service

import (
	"context"
	"fmt"
	"sync"

	preferenceout "gentlemind/internal/modules/preference/port/out"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/platform/logging"
)

const LanguageKey = "mindful_lang"

type LanguageService struct {
	store    preferenceout.KVStore
	logger   logging.Logger
	fallback i18n.Language

	mu   sync.RWMutex
	lang i18n.Language
}

func NewLanguageService(store preferenceout.KVStore, logger logging.Logger, fallback i18n.Language) *LanguageService {
	if _, err := i18n.ParseLanguage(string(fallback)); err != nil {
		fallback = i18n.Default
	}
	return &LanguageService{store: store, logger: logger, fallback: fallback, lang: fallback}
}

// Load restores the saved language. Unknown or unreadable values are ignored.
func (s *LanguageService) Load(ctx context.Context) i18n.Language {
	lang := s.fallback
	raw, ok, err := s.store.Get(ctx, LanguageKey)
	switch {
	case err != nil:
		s.logger.Warnf(logging.TypeStorage, "Language preference unreadable: %s", err)
	case ok:
		if parsed, perr := i18n.ParseLanguage(raw); perr == nil {
			lang = parsed
		} else {
			s.logger.Debugf(logging.TypeStorage, "Ignoring stored language %q", raw)
		}
	}

	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return lang
}

func (s *LanguageService) Language() i18n.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// SetLanguage switches immediately and then persists. The switch sticks for
// this run even if persisting fails.
func (s *LanguageService) SetLanguage(ctx context.Context, lang i18n.Language) error {
	parsed, err := i18n.ParseLanguage(string(lang))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.lang = parsed
	s.mu.Unlock()

	if err := s.store.Set(ctx, LanguageKey, string(parsed)); err != nil {
		return fmt.Errorf("persist language: %w", err)
	}
	return nil
}
