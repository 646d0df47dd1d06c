package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/service"
)

// FAQHandler handles the FAQ management endpoints.
type FAQHandler struct {
	faqService service.FAQService
}

// NewFAQHandler creates a new FAQHandler.
func NewFAQHandler(faqService service.FAQService) *FAQHandler {
	return &FAQHandler{
		faqService: faqService,
	}
}

// CreateFAQRequest represents the HTTP request payload for a new FAQ.
//
// swagger:model CreateFAQRequest
type CreateFAQRequest struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
	Lang     string   `json:"lang,omitempty"`
}

// UpdateFAQRequest represents a partial update. Omitted fields are unchanged.
//
// swagger:model UpdateFAQRequest
type UpdateFAQRequest struct {
	Question *string  `json:"question,omitempty"`
	Answer   *string  `json:"answer,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Lang     *string  `json:"lang,omitempty"`
}

// FAQResponse represents a stored FAQ.
//
// swagger:model FAQResponse
type FAQResponse struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Tags      []string  `json:"tags"`
	Lang      string    `json:"lang"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Create handles POST /faqs.
func (h *FAQHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	faq, err := h.faqService.Create(ctx, service.CreateFAQRequest{
		Question: req.Question,
		Answer:   req.Answer,
		Tags:     req.Tags,
		Lang:     req.Lang,
	})
	if err != nil {
		h.handleError(w, logger, err, 0)
		return
	}

	writeJSON(w, logger, http.StatusCreated, toFAQResponse(faq))
}

// List handles GET /faqs with an optional ?lang= filter.
func (h *FAQHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	faqs, err := h.faqService.List(ctx, r.URL.Query().Get("lang"))
	if err != nil {
		h.handleError(w, logger, err, 0)
		return
	}

	resp := make([]FAQResponse, 0, len(faqs))
	for _, faq := range faqs {
		resp = append(resp, toFAQResponse(faq))
	}
	writeJSON(w, logger, http.StatusOK, resp)
}

// Get handles GET /faqs/{id}.
func (h *FAQHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	faq, err := h.faqService.Get(ctx, id)
	if err != nil {
		h.handleError(w, logger, err, id)
		return
	}

	writeJSON(w, logger, http.StatusOK, toFAQResponse(faq))
}

// Update handles PATCH /faqs/{id}.
func (h *FAQHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	var req UpdateFAQRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	faq, err := h.faqService.Update(ctx, id, service.UpdateFAQRequest{
		Question: req.Question,
		Answer:   req.Answer,
		Tags:     req.Tags,
		Lang:     req.Lang,
	})
	if err != nil {
		h.handleError(w, logger, err, id)
		return
	}

	writeJSON(w, logger, http.StatusOK, toFAQResponse(faq))
}

// Delete handles DELETE /faqs/{id}.
func (h *FAQHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	if err := h.faqService.Delete(ctx, id); err != nil {
		h.handleError(w, logger, err, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleError maps service errors to HTTP status codes.
func (h *FAQHandler) handleError(w http.ResponseWriter, logger *slog.Logger, err error, id int64) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, fmt.Sprintf("FAQ with ID %d not found", id))
	default:
		logger.Error("faq operation failed", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toFAQResponse(faq service.FAQ) FAQResponse {
	tags := faq.Tags
	if tags == nil {
		tags = []string{}
	}
	return FAQResponse{
		ID:        faq.ID,
		Question:  faq.Question,
		Answer:    faq.Answer,
		Tags:      tags,
		Lang:      faq.Lang,
		CreatedAt: faq.CreatedAt,
		UpdatedAt: faq.UpdatedAt,
	}
}
