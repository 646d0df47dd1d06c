package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ask_service.go -package=mocks clinic-faq/internal/service AskService

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clinic-faq/internal/cache"
	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/match"
)

// AskRequest is a question in the domain layer.
// Empty or whitespace-only text is not an error; it is answered with the fallback.
type AskRequest struct {
	Text string
	Lang string
}

// GenerationSource reports the knowledge base generation, which changes
// with every committed write.
type GenerationSource interface {
	Generation(ctx context.Context) (int64, error)
}

// AskService answers questions against the knowledge base.
type AskService interface {
	// Ask returns the ranked answer. It never rejects the request text.
	// Store failures are reported as ErrStoreUnavailable.
	Ask(ctx context.Context, req AskRequest) (match.AskResponse, error)
}

// askService implements AskService.
type askService struct {
	engine      match.Engine
	generations GenerationSource
	askCache    cache.Client
	ttl         time.Duration
	logger      *slog.Logger
}

// NewAskService creates a new AskService. Cached answers are keyed by the
// generation read before the engine runs, so a write that lands mid-ask can
// never leave its stale answer visible to later asks. askCache may be nil
// to disable caching.
func NewAskService(engine match.Engine, generations GenerationSource, askCache cache.Client, ttl time.Duration) AskService {
	return &askService{
		engine:      engine,
		generations: generations,
		askCache:    askCache,
		ttl:         ttl,
		logger:      slog.Default(),
	}
}

// Ask answers a question, serving repeated questions from the cache.
func (s *askService) Ask(ctx context.Context, req AskRequest) (match.AskResponse, error) {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	lang := langOrDefault(normalizeLang(req.Lang))
	key, cacheable := s.cacheKey(ctx, logger, lang, req.Text)

	if cacheable {
		if resp, ok := s.lookup(ctx, logger, key); ok {
			logger.DebugContext(ctx, "ask served from cache", "lang", lang)
			return resp, nil
		}
	}

	resp, err := s.engine.Ask(ctx, match.AskRequest{Text: req.Text, Lang: lang})
	if err != nil {
		return match.AskResponse{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if cacheable {
		s.store(ctx, logger, key, resp)
	}
	logger.InfoContext(ctx, "question answered",
		"lang", lang,
		"results", len(resp.Results),
		"ambiguous", resp.Ambiguous,
		"fallback", resp.Message != "",
	)
	return resp, nil
}

// cacheKey reports false when there is no cache or the generation is unknown.
func (s *askService) cacheKey(ctx context.Context, logger *slog.Logger, lang, text string) (string, bool) {
	if s.askCache == nil || s.generations == nil {
		return "", false
	}
	gen, err := s.generations.Generation(ctx)
	if err != nil {
		logger.WarnContext(ctx, "skipping ask cache, generation unavailable", "error", err)
		return "", false
	}
	return cache.AskKey(gen, lang, text), true
}

func (s *askService) lookup(ctx context.Context, logger *slog.Logger, key string) (match.AskResponse, bool) {
	data, err := s.askCache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			logger.WarnContext(ctx, "ask cache read failed", "error", err)
		}
		return match.AskResponse{}, false
	}

	var resp match.AskResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.WarnContext(ctx, "discarding undecodable cached ask response", "error", err)
		if err := s.askCache.Delete(ctx, key); err != nil {
			logger.WarnContext(ctx, "failed to delete undecodable cache entry", "error", err)
		}
		return match.AskResponse{}, false
	}
	if resp.Results == nil {
		resp.Results = []match.Result{}
	}
	return resp, true
}

func (s *askService) store(ctx context.Context, logger *slog.Logger, key string, resp match.AskResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		logger.WarnContext(ctx, "failed to encode ask response for cache", "error", err)
		return
	}
	if err := s.askCache.Set(ctx, key, data, s.ttl); err != nil {
		logger.WarnContext(ctx, "ask cache write failed", "error", err)
	}
}
