package match

import (
	"context"
	"io"
	"log/slog"
)

func init() {
	// Keep test output clean; the engine logs through slog.Default().
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

var clinicEntries = []Entry{
	{
		ID:       1,
		Question: "What are your opening hours?",
		Answer:   "We are open Monday to Friday 9-6",
		Tags:     []string{"hours", "schedule"},
		Lang:     "en",
	},
	{
		ID:       2,
		Question: "How to book appointment?",
		Answer:   "Call us or use online portal",
		Tags:     []string{"booking", "appointment"},
		Lang:     "en",
	},
	{
		ID:       3,
		Question: "Do you provide vaccines?",
		Answer:   "Yes, we offer various vaccination services",
		Tags:     []string{"services", "vaccination"},
		Lang:     "en",
	},
}

// sliceSource serves entries filtered by language, in slice order.
type sliceSource struct {
	entries   []Entry
	err       error
	lastLang  string
	callCount int
}

func (s *sliceSource) FetchEntries(_ context.Context, lang string) ([]Entry, error) {
	s.lastLang = lang
	s.callCount++
	if s.err != nil {
		return nil, s.err
	}
	var out []Entry
	for _, e := range s.entries {
		if e.Lang == lang {
			out = append(out, e)
		}
	}
	return out, nil
}
