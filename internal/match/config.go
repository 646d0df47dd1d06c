package match

import "fmt"

const (
	defaultQuestionWeight      = 0.6
	defaultAnswerWeight        = 0.2
	defaultTagWeight           = 0.2
	defaultConfidenceThreshold = 0.3
	defaultAmbiguityRatio      = 0.8
	defaultMaxResults          = 3

	// FallbackMessage is returned whenever no entry is a confident match.
	FallbackMessage = "Not sure, please contact staff."
)

// Config holds the scoring weights and ranking thresholds.
type Config struct {
	QuestionWeight float64
	AnswerWeight   float64
	TagWeight      float64

	// ConfidenceThreshold is the minimum score for a candidate to be considered at all.
	ConfidenceThreshold float64
	// AmbiguityRatio is the fraction of the top score a candidate needs to count as a close match.
	AmbiguityRatio float64
	// MaxResults caps the result list when the query is not ambiguous.
	MaxResults int
}

// DefaultConfig returns the tuned production values.
func DefaultConfig() Config {
	return Config{
		QuestionWeight:      defaultQuestionWeight,
		AnswerWeight:        defaultAnswerWeight,
		TagWeight:           defaultTagWeight,
		ConfidenceThreshold: defaultConfidenceThreshold,
		AmbiguityRatio:      defaultAmbiguityRatio,
		MaxResults:          defaultMaxResults,
	}
}

// Validate reports whether the configuration keeps scores inside [0,1] and ranking well defined.
func (c Config) Validate() error {
	for name, w := range map[string]float64{
		"question weight": c.QuestionWeight,
		"answer weight":   c.AnswerWeight,
		"tag weight":      c.TagWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, w)
		}
	}
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return fmt.Errorf("confidence threshold must be between 0 and 1, got %v", c.ConfidenceThreshold)
	}
	if c.AmbiguityRatio <= 0 || c.AmbiguityRatio > 1 {
		return fmt.Errorf("ambiguity ratio must be in (0, 1], got %v", c.AmbiguityRatio)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("max results must be at least 1, got %d", c.MaxResults)
	}
	return nil
}
