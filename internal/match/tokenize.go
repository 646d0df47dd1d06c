package match

import (
	"strings"
	"unicode"
)

// minTokenLen is the shortest token kept; anything with two or fewer bytes is dropped.
const minTokenLen = 3

// Tokenize lowercases text, replaces every non-word, non-space rune with a space
// and splits on whitespace runs. Tokens shorter than three characters are discarded.
// Word characters are ASCII letters, digits and underscore.
func Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var builder strings.Builder
	builder.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		if isWordRune(r) || unicode.IsSpace(r) {
			builder.WriteRune(r)
		} else {
			builder.WriteRune(' ')
		}
	}

	fields := strings.Fields(builder.String())
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		if len(field) < minTokenLen {
			continue
		}
		tokens = append(tokens, field)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func isWordRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// tokenSet deduplicates tokens.
func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		set[token] = struct{}{}
	}
	return set
}

// Overlap returns the number of distinct tokens present in both a and b.
func Overlap(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	return overlapSet(tokenSet(a), b)
}

// overlapSet counts distinct tokens of b found in set.
func overlapSet(set map[string]struct{}, b []string) int {
	seen := make(map[string]struct{}, len(b))
	var count int
	for _, token := range b {
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		if _, ok := set[token]; ok {
			count++
		}
	}
	return count
}
