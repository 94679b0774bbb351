package service

import (
	"context"
	"strings"
	"time"

	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/modules/wisdom/domain"
	wisdomin "gentlemind/internal/modules/wisdom/port/in"
	wisdomout "gentlemind/internal/modules/wisdom/port/out"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/platform/logging"
)

const DefaultTimeout = 8 * time.Second

type WisdomService struct {
	generator wisdomout.Generator
	cache     wisdomout.Cache
	logger    logging.Logger
	timeout   time.Duration
}

// NewWisdomService wires a generator behind fallbacks. A nil generator or
// cache is treated as absent.
func NewWisdomService(generator wisdomout.Generator, cache wisdomout.Cache, logger logging.Logger, timeout time.Duration) wisdomin.Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &WisdomService{generator: generator, cache: cache, logger: logger, timeout: timeout}
}

func (s *WisdomService) Affirmation(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string {
	return s.produce(ctx, domain.Request{Kind: domain.KindAffirmation, Mood: mood, Lang: lang})
}

func (s *WisdomService) GuidedScript(ctx context.Context, mood mooddomain.Mood, minutes int, lang i18n.Language) string {
	return s.produce(ctx, domain.Request{Kind: domain.KindScript, Mood: mood, Minutes: minutes, Lang: lang})
}

func (s *WisdomService) ClosingMessage(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string {
	return s.produce(ctx, domain.Request{Kind: domain.KindClosing, Mood: mood, Lang: lang})
}

func (s *WisdomService) produce(ctx context.Context, req domain.Request) string {
	if s.generator == nil || !s.generator.Configured() {
		return req.Fallback()
	}
	key := req.CacheKey()
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			s.logger.Debugf(logging.TypeWisdom, "Cache hit for %s", key)
			return v
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	text, err := s.generator.Generate(callCtx, req.Prompt())
	if err != nil {
		s.logger.Warnf(logging.TypeWisdom, "Generating %s failed after %s, using fallback: %s", req.Kind, time.Since(start).Round(time.Millisecond), err)
		return req.Fallback()
	}
	text = strings.TrimSpace(text)
	if text == "" {
		s.logger.Warnf(logging.TypeWisdom, "Empty %s from provider, using fallback", req.Kind)
		return req.Fallback()
	}
	if s.cache != nil {
		s.cache.Set(key, text)
	}
	s.logger.Debugf(logging.TypeWisdom, "Generated %s for %s in %s", req.Kind, req.Mood, time.Since(start).Round(time.Millisecond))
	return text
}
