package match

// DefaultLang is used when a request does not name a language.
const DefaultLang = "en"

// Entry is a read-only snapshot of one FAQ record as seen by the engine.
type Entry struct {
	ID       int64
	Question string
	Answer   string
	Tags     []string
	Lang     string
}

// AskRequest represents a free-text question against the knowledge base.
type AskRequest struct {
	// Text is the raw question. Empty or punctuation-only text is valid and yields the fallback.
	Text string `json:"text"`
	// Lang filters candidate entries. Defaults to DefaultLang.
	Lang string `json:"lang,omitempty"`
}

// Result is the public projection of a selected entry.
type Result struct {
	ID       int64    `json:"id"`
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Tags     []string `json:"tags"`
	// Score is rounded to two decimal places.
	Score float64 `json:"score"`
}

// AskResponse is the outcome of a query.
// Results is empty exactly when Message is set. Ambiguous is only serialized when true.
type AskResponse struct {
	Results   []Result `json:"results"`
	Ambiguous bool     `json:"ambiguous,omitempty"`
	Message   string   `json:"message,omitempty"`
}

// Candidate pairs an entry with its score during a single ranking pass.
type Candidate struct {
	Entry Entry
	Score float64
}
