package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_faq_service.go -package=mocks clinic-faq/internal/service FAQService

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"clinic-faq/internal/cache"
	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/match"
	"clinic-faq/internal/storage"
)

// FAQ is a knowledge base entry in the domain layer.
type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	Tags      []string
	Lang      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateFAQRequest holds the fields for a new FAQ.
type CreateFAQRequest struct {
	Question string   `validate:"required,nonblank"`
	Answer   string   `validate:"required,nonblank"`
	Tags     []string `validate:"required,min=1,dive,nonblank"`
	Lang     string   `validate:"omitempty,len=2,alpha"` // defaults to "en"
}

// UpdateFAQRequest holds a partial update. Nil fields are left unchanged.
type UpdateFAQRequest struct {
	Question *string  `validate:"omitnil,nonblank"`
	Answer   *string  `validate:"omitnil,nonblank"`
	Tags     []string `validate:"omitnil,dive,nonblank"`
	Lang     *string  `validate:"omitnil,len=2,alpha"`
}

// FAQService manages the FAQ knowledge base.
// It also acts as the engine's entry source.
type FAQService interface {
	// Create validates and stores a new FAQ.
	Create(ctx context.Context, req CreateFAQRequest) (FAQ, error)
	// List returns FAQs for lang ordered by ID. An empty lang lists every language.
	List(ctx context.Context, lang string) ([]FAQ, error)
	// Get returns a single FAQ. Returns ErrNotFound if it does not exist.
	Get(ctx context.Context, id int64) (FAQ, error)
	// Update applies a partial update. Returns ErrNotFound if the FAQ does not exist.
	Update(ctx context.Context, id int64, req UpdateFAQRequest) (FAQ, error)
	// Delete removes a FAQ. Returns ErrNotFound if it does not exist.
	Delete(ctx context.Context, id int64) error
	// FetchEntries returns the matchable entries for lang.
	FetchEntries(ctx context.Context, lang string) ([]match.Entry, error)
	// Generation returns the store's write counter.
	Generation(ctx context.Context) (int64, error)
}

// faqService implements FAQService.
type faqService struct {
	store    storage.FAQStore
	askCache cache.Client
	logger   *slog.Logger
}

// NewFAQService creates a new FAQService. askCache may be nil; when set,
// every successful mutation drops the cached ask responses.
func NewFAQService(store storage.FAQStore, askCache cache.Client) FAQService {
	return &faqService{
		store:    store,
		askCache: askCache,
		logger:   slog.Default(),
	}
}

// Create stores a new FAQ.
func (s *faqService) Create(ctx context.Context, req CreateFAQRequest) (FAQ, error) {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	req.Lang = normalizeLang(req.Lang)
	if err := validateStruct(req); err != nil {
		logger.WarnContext(ctx, "invalid create faq request", "error", err)
		return FAQ{}, err
	}

	rec := &storage.FAQRecord{
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
		Tags:     normalizeTags(req.Tags),
		Lang:     langOrDefault(req.Lang),
	}
	if err := s.store.Create(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to create faq", "error", err)
		return FAQ{}, WrapError(err, "failed to create faq")
	}

	s.invalidate(ctx, logger)
	logger.InfoContext(ctx, "faq created", "id", rec.ID, "lang", rec.Lang)
	return toFAQ(*rec), nil
}

// List returns FAQs for lang.
func (s *faqService) List(ctx context.Context, lang string) ([]FAQ, error) {
	records, err := s.store.List(ctx, normalizeLang(lang))
	if err != nil {
		return nil, WrapError(err, "failed to list faqs")
	}

	faqs := make([]FAQ, 0, len(records))
	for _, rec := range records {
		faqs = append(faqs, toFAQ(rec))
	}
	return faqs, nil
}

// Get returns a single FAQ.
func (s *faqService) Get(ctx context.Context, id int64) (FAQ, error) {
	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return FAQ{}, mapStoreError(err, "failed to get faq")
	}
	return toFAQ(*rec), nil
}

// Update applies the non-nil fields of req to an existing FAQ.
func (s *faqService) Update(ctx context.Context, id int64, req UpdateFAQRequest) (FAQ, error) {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	if req.Lang != nil {
		lang := normalizeLang(*req.Lang)
		req.Lang = &lang
	}
	if err := validateStruct(req); err != nil {
		logger.WarnContext(ctx, "invalid update faq request", "id", id, "error", err)
		return FAQ{}, err
	}

	rec, err := s.store.GetByID(ctx, id)
	if err != nil {
		return FAQ{}, mapStoreError(err, "failed to get faq")
	}

	if req.Question != nil {
		rec.Question = strings.TrimSpace(*req.Question)
	}
	if req.Answer != nil {
		rec.Answer = strings.TrimSpace(*req.Answer)
	}
	if req.Tags != nil {
		rec.Tags = normalizeTags(req.Tags)
	}
	if req.Lang != nil {
		rec.Lang = *req.Lang
	}

	if err := s.store.Update(ctx, rec); err != nil {
		logger.ErrorContext(ctx, "failed to update faq", "id", id, "error", err)
		return FAQ{}, mapStoreError(err, "failed to update faq")
	}

	s.invalidate(ctx, logger)
	logger.InfoContext(ctx, "faq updated", "id", id)
	return toFAQ(*rec), nil
}

// Delete removes a FAQ.
func (s *faqService) Delete(ctx context.Context, id int64) error {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.ErrorContext(ctx, "failed to delete faq", "id", id, "error", err)
		}
		return mapStoreError(err, "failed to delete faq")
	}

	s.invalidate(ctx, logger)
	logger.InfoContext(ctx, "faq deleted", "id", id)
	return nil
}

// FetchEntries implements match.EntrySource.
func (s *faqService) FetchEntries(ctx context.Context, lang string) ([]match.Entry, error) {
	records, err := s.store.List(ctx, lang)
	if err != nil {
		return nil, err
	}

	entries := make([]match.Entry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, match.Entry{
			ID:       rec.ID,
			Question: rec.Question,
			Answer:   rec.Answer,
			Tags:     rec.Tags,
			Lang:     rec.Lang,
		})
	}
	return entries, nil
}

// Generation implements GenerationSource.
func (s *faqService) Generation(ctx context.Context) (int64, error) {
	return s.store.Generation(ctx)
}

// invalidate drops cached ask responses to free space. Correctness does not
// depend on it, since asks key the cache by generation, so failures are only logged.
func (s *faqService) invalidate(ctx context.Context, logger *slog.Logger) {
	if s.askCache == nil {
		return
	}
	if err := s.askCache.DeleteByPrefix(ctx, cache.AskPrefix); err != nil {
		logger.WarnContext(ctx, "failed to invalidate ask cache", "error", err)
	}
}

func mapStoreError(err error, msg string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return ErrNotFound
	}
	return WrapError(err, msg)
}

func toFAQ(rec storage.FAQRecord) FAQ {
	tags := rec.Tags
	if tags == nil {
		tags = []string{}
	}
	return FAQ{
		ID:        rec.ID,
		Question:  rec.Question,
		Answer:    rec.Answer,
		Tags:      tags,
		Lang:      rec.Lang,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

// normalizeLang trims and lowercases a language code. Empty stays empty.
func normalizeLang(lang string) string {
	return strings.ToLower(strings.TrimSpace(lang))
}

func langOrDefault(lang string) string {
	if lang == "" {
		return match.DefaultLang
	}
	return lang
}

// normalizeTags trims surrounding whitespace from each tag.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, strings.TrimSpace(tag))
	}
	return out
}
