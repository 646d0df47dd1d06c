package match

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks clinic-faq/internal/match Engine,EntrySource

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"clinic-faq/internal/contextutil"
)

// ErrEntrySourceRequired is returned by NewEngine when no entry source is given.
var ErrEntrySourceRequired = errors.New("entry source is required")

// EntrySource supplies the candidate entries for a language.
// This interface is defined from the engine's perspective (consumer-first).
type EntrySource interface {
	// FetchEntries returns all entries for lang ordered by ascending ID.
	FetchEntries(ctx context.Context, lang string) ([]Entry, error)
}

// Engine answers questions against the knowledge base.
type Engine interface {
	// Ask scores every entry for the request language and ranks the result.
	Ask(ctx context.Context, req AskRequest) (AskResponse, error)
}

// Option configures an engine.
type Option func(*engine) error

// WithConfig overrides the default weights and thresholds.
func WithConfig(cfg Config) Option {
	return func(e *engine) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid match config: %w", err)
		}
		e.scorer = NewScorer(cfg)
		e.ranker = NewRanker(cfg)
		return nil
	}
}

// WithWorkerPool scores entries concurrently on pool.
// The pool is owned by the caller. Nil keeps scoring sequential.
func WithWorkerPool(pool *ants.Pool) Option {
	return func(e *engine) error {
		e.pool = pool
		return nil
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(e *engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// engine implements the Engine interface.
type engine struct {
	source EntrySource
	scorer Scorer
	ranker Ranker
	pool   *ants.Pool
	logger *slog.Logger
}

// NewEngine creates a query engine reading candidates from source.
func NewEngine(source EntrySource, opts ...Option) (Engine, error) {
	if source == nil {
		return nil, ErrEntrySourceRequired
	}

	cfg := DefaultConfig()
	e := &engine{
		source: source,
		scorer: NewScorer(cfg),
		ranker: NewRanker(cfg),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Ask answers a question. Store failures are returned wrapped; every other
// outcome, including an empty or nonsensical question, is a response.
func (e *engine) Ask(ctx context.Context, req AskRequest) (AskResponse, error) {
	logger := contextutil.LoggerFromContextOr(ctx, e.logger)

	lang := strings.TrimSpace(req.Lang)
	if lang == "" {
		lang = DefaultLang
	}

	entries, err := e.source.FetchEntries(ctx, lang)
	if err != nil {
		logger.ErrorContext(ctx, "failed to fetch entries", "lang", lang, "error", err)
		return AskResponse{}, fmt.Errorf("failed to fetch entries: %w", err)
	}
	if len(entries) == 0 {
		logger.DebugContext(ctx, "no entries for language", "lang", lang)
		return Fallback(), nil
	}

	candidates := e.scoreAll(ctx, logger, req.Text, entries)
	resp := e.ranker.Rank(candidates)

	logger.DebugContext(ctx, "query ranked",
		"lang", lang,
		"candidates", len(entries),
		"results", len(resp.Results),
		"ambiguous", resp.Ambiguous,
	)
	return resp, nil
}

// scoreAll scores each entry. Results are written by index, so the output is
// identical whether or not a worker pool is used.
func (e *engine) scoreAll(ctx context.Context, logger *slog.Logger, text string, entries []Entry) []Candidate {
	q := newQueryTokens(text)
	candidates := make([]Candidate, len(entries))

	if e.pool == nil || len(entries) < 2 {
		for i, entry := range entries {
			candidates[i] = Candidate{Entry: entry, Score: e.scorer.score(q, entry)}
		}
		return candidates
	}

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			candidates[i] = Candidate{Entry: entry, Score: e.scorer.score(q, entry)}
		}
		if err := e.pool.Submit(task); err != nil {
			// pool closed or overloaded; score inline
			logger.WarnContext(ctx, "worker pool rejected scoring task", "error", err)
			task()
		}
	}
	wg.Wait()
	return candidates
}
