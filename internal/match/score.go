package match

// Score computes the relevance of entry to query with the default weights.
func Score(query string, entry Entry) float64 {
	return NewScorer(DefaultConfig()).Score(query, entry)
}

// Scorer weighs question, answer and tag overlap into a single score in [0,1].
type Scorer struct {
	questionWeight float64
	answerWeight   float64
	tagWeight      float64
}

// NewScorer creates a Scorer from the weights in cfg.
func NewScorer(cfg Config) Scorer {
	return Scorer{
		questionWeight: cfg.QuestionWeight,
		answerWeight:   cfg.AnswerWeight,
		tagWeight:      cfg.TagWeight,
	}
}

// Score computes the relevance of entry to query.
func (s Scorer) Score(query string, entry Entry) float64 {
	return s.score(newQueryTokens(query), entry)
}

// queryTokens caches the tokenized query so it is built once per request.
type queryTokens struct {
	set   map[string]struct{}
	count int
}

func newQueryTokens(query string) queryTokens {
	tokens := Tokenize(query)
	return queryTokens{set: tokenSet(tokens), count: len(tokens)}
}

func (s Scorer) score(q queryTokens, entry Entry) float64 {
	divisor := float64(max(q.count, 1))

	questionOverlap := overlapSet(q.set, Tokenize(entry.Question))
	answerOverlap := overlapSet(q.set, Tokenize(entry.Answer))

	var tagOverlapSum int
	for _, tag := range entry.Tags {
		tagOverlapSum += overlapSet(q.set, Tokenize(tag))
	}
	tagOverlap := float64(tagOverlapSum) / float64(max(len(entry.Tags), 1))

	keywordScore := (float64(questionOverlap)*s.questionWeight + float64(answerOverlap)*s.answerWeight) / divisor
	tagScore := tagOverlap * s.tagWeight

	return min(keywordScore+tagScore, 1.0)
}
