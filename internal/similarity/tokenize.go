// Package similarity scores lexical similarity between a job description and
// a resume using TF-IDF weighted cosine similarity.
package similarity

import (
	"strings"
	"unicode"
)

// stopWords filters common English words that add noise to term matching.
var stopWords = map[string]bool{
	"and": true, "the": true, "for": true, "with": true, "you": true,
	"are": true, "have": true, "will": true, "this": true, "that": true,
	"from": true, "our": true, "your": true, "their": true, "they": true,
	"about": true, "which": true, "what": true, "who": true, "how": true,
	"can": true, "not": true, "but": true, "all": true, "also": true,
	"more": true, "than": true, "into": true, "has": true, "its": true,
	"was": true, "were": true, "been": true, "each": true, "such": true,
	"any": true, "his": true, "her": true, "she": true, "him": true,
	"had": true, "would": true, "there": true, "where": true, "when": true,
	"is": true, "in": true, "it": true, "of": true, "on": true, "or": true,
	"to": true, "an": true, "as": true, "at": true, "by": true, "we": true,
	"be": true, "am": true, "if": true, "do": true, "so": true, "no": true,
	"us": true, "a": true, "i": true,
}

// Tokenize lower-cases text into terms, treating '+', '#' and '.' as word
// characters so tech terms like "c++", "c#" and "node.js" survive intact.
// Stop words and single-rune terms are dropped.
func Tokenize(text string) []string {
	var terms []string
	var word strings.Builder

	flush := func() {
		w := strings.TrimRight(word.String(), ".")
		word.Reset()
		if len([]rune(w)) < 2 || stopWords[w] {
			return
		}
		terms = append(terms, w)
	}

	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return terms
}
