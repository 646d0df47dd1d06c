package match

import (
	"math"
	"sort"
)

// Ranker filters, orders and shapes scored candidates into a response.
type Ranker struct {
	confidenceThreshold float64
	ambiguityRatio      float64
	maxResults          int
}

// NewRanker creates a Ranker from the thresholds in cfg.
func NewRanker(cfg Config) Ranker {
	return Ranker{
		confidenceThreshold: cfg.ConfidenceThreshold,
		ambiguityRatio:      cfg.AmbiguityRatio,
		maxResults:          cfg.MaxResults,
	}
}

// Rank turns scored candidates into a response.
//
// Candidates below the confidence threshold are dropped. The remainder is
// sorted by descending score, ties broken by ascending entry ID. When the close
// matches (within the ambiguity ratio of the top score) span more than one tag,
// all close matches are returned and the response is flagged ambiguous;
// otherwise at most maxResults candidates are returned.
func (r Ranker) Rank(candidates []Candidate) AskResponse {
	confident := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score >= r.confidenceThreshold {
			confident = append(confident, c)
		}
	}
	if len(confident) == 0 {
		return Fallback()
	}

	sort.SliceStable(confident, func(i, j int) bool {
		if confident[i].Score != confident[j].Score {
			return confident[i].Score > confident[j].Score
		}
		return confident[i].Entry.ID < confident[j].Entry.ID
	})

	topScore := confident[0].Score
	cutoff := topScore * r.ambiguityRatio

	var closeMatches []Candidate
	tagUnion := make(map[string]struct{})
	for _, c := range confident {
		if c.Score < cutoff {
			// sorted, so nothing after this is close either
			break
		}
		closeMatches = append(closeMatches, c)
		for _, tag := range c.Entry.Tags {
			tagUnion[tag] = struct{}{}
		}
	}

	ambiguous := len(tagUnion) > 1 && len(closeMatches) > 1

	selected := closeMatches
	if !ambiguous {
		selected = confident[:min(len(confident), r.maxResults)]
	}

	results := make([]Result, 0, len(selected))
	for _, c := range selected {
		results = append(results, project(c))
	}

	return AskResponse{
		Results:   results,
		Ambiguous: ambiguous,
	}
}

// Fallback is the response for queries with no confident match.
func Fallback() AskResponse {
	return AskResponse{
		Results: []Result{},
		Message: FallbackMessage,
	}
}

func project(c Candidate) Result {
	tags := c.Entry.Tags
	if tags == nil {
		tags = []string{}
	}
	return Result{
		ID:       c.Entry.ID,
		Question: c.Entry.Question,
		Answer:   c.Entry.Answer,
		Tags:     tags,
		Score:    roundScore(c.Score),
	}
}

// roundScore rounds to two decimal places, halves away from zero.
func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}
