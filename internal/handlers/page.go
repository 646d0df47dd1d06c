package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"clinic-faq/internal/contextutil"
	"clinic-faq/internal/service"
)

// PageHandler serves a single FAQ as a standalone HTML page, rendering the
// answer as Markdown.
type PageHandler struct {
	faqService service.FAQService
	markdown   goldmark.Markdown
	template   *template.Template
}

// faqPageData holds template data for rendered FAQ pages.
type faqPageData struct {
	Question string
	Lang     string
	Tags     []string
	Answer   template.HTML
}

var faqPageTemplate = template.Must(template.New("faq").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>{{.Question}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
      margin: 0 auto;
      padding: 2rem;
      max-width: 760px;
      line-height: 1.6;
      color: #1f2937;
    }
    h1 {
      font-size: 1.6rem;
      margin-top: 0;
    }
    .tags span {
      display: inline-block;
      margin-right: 0.4rem;
      padding: 2px 8px;
      border-radius: 999px;
      background: #e0f2fe;
      color: #075985;
      font-size: 0.85rem;
    }
    article {
      margin-top: 1.5rem;
      padding: 1.5rem;
      border: 1px solid #e5e7eb;
      border-radius: 12px;
    }
  </style>
</head>
<body>
  <h1>{{.Question}}</h1>
  <p class="tags">{{range .Tags}}<span>{{.}}</span>{{end}}</p>
  <article>{{.Answer}}</article>
</body>
</html>`))

// NewPageHandler creates a new PageHandler.
func NewPageHandler(faqService service.FAQService) *PageHandler {
	return &PageHandler{
		faqService: faqService,
		// Raw HTML in answers is escaped: the default renderer is not unsafe.
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				extension.Typographer,
			),
		),
		template: faqPageTemplate,
	}
}

// ServeHTTP handles GET /faqs/{id}/page.
func (h *PageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(r)
	if !ok {
		http.Error(w, "invalid FAQ id", http.StatusBadRequest)
		return
	}

	faq, err := h.faqService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			http.Error(w, "FAQ not found", http.StatusNotFound)
			return
		}
		logger.ErrorContext(ctx, "failed to load faq", "id", id, "error", err)
		http.Error(w, "failed to load FAQ", http.StatusInternalServerError)
		return
	}

	answer, err := h.renderMarkdown([]byte(faq.Answer))
	if err != nil {
		logger.ErrorContext(ctx, "failed to render markdown", "id", id, "error", err)
		http.Error(w, "failed to render FAQ", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	err = h.template.Execute(&buf, faqPageData{
		Question: faq.Question,
		Lang:     faq.Lang,
		Tags:     faq.Tags,
		Answer:   template.HTML(answer),
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to execute faq template", "id", id, "error", err)
		http.Error(w, "failed to render FAQ", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (h *PageHandler) renderMarkdown(content []byte) (string, error) {
	var buf bytes.Buffer
	if err := h.markdown.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return buf.String(), nil
}
