// Package criteria converts questionnaire answers or free-text chat messages
// into a normalized criteria map used by the matching engine.
package criteria

import (
	"strings"

	"fashionous/internal/catalog"
)

// Attribute keys a criteria map may carry. These are the only attributes the
// matching engine understands.
const (
	KeyFabric   = "fabric"
	KeyOccasion = "occasion"
	KeyNeckline = "neckline"
	KeySleeve   = "sleeve"
)

// Map holds at most one normalized value per attribute key. Empty values are
// never stored: an absent key means the attribute is unconstrained.
type Map map[string]string

// FromAnswers normalizes a questionnaire answer map into criteria. Values
// are lowercased and trimmed; empty answers (skipped questions) are dropped.
func FromAnswers(answers map[string]string) Map {
	c := make(Map, len(answers))
	for key, value := range answers {
		if n := catalog.Normalize(value); n != "" {
			c[key] = n
		}
	}
	return c
}

// FromText extracts criteria from a free-text chat message by exact
// vocabulary-token lookup. The message is lowercased and split on
// whitespace; each token is checked against the vocabulary sets in a fixed
// priority order (fabric, occasion, neckline, sleeve). Unrecognized tokens
// are ignored. When two tokens map to the same attribute the later one wins.
func FromText(message string, vocab *catalog.Vocabulary) Map {
	c := make(Map)
	for _, token := range strings.Fields(strings.ToLower(message)) {
		switch {
		case vocab.HasFabric(token):
			c[KeyFabric] = token
		case vocab.HasOccasion(token):
			c[KeyOccasion] = token
		case vocab.HasNeckline(token):
			c[KeyNeckline] = token
		case vocab.HasSleeve(token):
			c[KeySleeve] = token
		}
	}
	return c
}
