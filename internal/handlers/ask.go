package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/match"
	"clinic-faq/internal/service"
)

// AskHandler handles HTTP requests for FAQ questions.
type AskHandler struct {
	askService service.AskService
}

// NewAskHandler creates a new AskHandler.
func NewAskHandler(askService service.AskService) *AskHandler {
	return &AskHandler{
		askService: askService,
	}
}

// AskRequest represents the HTTP request payload for a question.
//
// swagger:model AskRequest
type AskRequest struct {
	// The question as typed by the user
	Text string `json:"text"`

	// Two-letter language code; defaults to "en"
	Lang string `json:"lang,omitempty"`
}

// AskResponse represents the HTTP response payload for a question.
//
// swagger:model AskResponse
type AskResponse struct {
	// Matching FAQs, best first. Always present, possibly empty.
	Results []AskResult `json:"results"`

	// Ambiguous is set when several close matches span different topics.
	Ambiguous bool `json:"ambiguous,omitempty"`

	// Message is set when nothing matched confidently.
	Message string `json:"message,omitempty"`
}

// AskResult is a single scored FAQ in an AskResponse.
//
// swagger:model AskResult
type AskResult struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
	Score    float64  `json:"score"`
}

// ServeHTTP handles HTTP requests for questions.
//
// swagger:route POST /faqs/ask askQuestion
//
// # Ask a question
//
// Scores every FAQ in the requested language against the question and
// returns the confident matches, an ambiguity signal, or a fallback message.
//
// ---
// consumes:
// - application/json
// produces:
// - application/json
// responses:
//
//	'200':
//	  description: Ranked results or fallback
//	  schema:
//	    "$ref": "#/definitions/AskResponse"
//	'400':
//	  description: Malformed body
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
//	'503':
//	  description: FAQ store unavailable
//	  schema:
//	    "$ref": "#/definitions/ErrorResponse"
func (h *AskHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.askService.Ask(ctx, service.AskRequest{
		Text: req.Text,
		Lang: req.Lang,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStoreUnavailable):
			logger.ErrorContext(ctx, "faq store unavailable", "error", err)
			writeError(w, http.StatusServiceUnavailable, "FAQ store unavailable")
		default:
			logger.ErrorContext(ctx, "failed to answer question", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to answer question")
		}
		return
	}

	writeJSON(w, logger, http.StatusOK, toAskResponse(resp))
}

func toAskResponse(resp match.AskResponse) AskResponse {
	results := make([]AskResult, 0, len(resp.Results))
	for _, res := range resp.Results {
		tags := res.Tags
		if tags == nil {
			tags = []string{}
		}
		results = append(results, AskResult{
			ID:       res.ID,
			Question: res.Question,
			Answer:   res.Answer,
			Tags:     tags,
			Score:    res.Score,
		})
	}
	return AskResponse{
		Results:   results,
		Ambiguous: resp.Ambiguous,
		Message:   resp.Message,
	}
}
