// Package extraction pulls contact entities and canonical skills out of raw
// resume text.
package extraction

import (
	"sort"
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/jonathan/resume-ranker/internal/catalog"
)

// Options control fuzzy skill matching behavior.
type Options struct {
	// Threshold is the minimum normalized similarity (0-100) for a fuzzy
	// match to be accepted.
	Threshold float64
	// MaxNGram is the widest token window considered, so multi-word skills
	// like "machine learning" are found.
	MaxNGram int
	// MinFuzzyLen excludes short candidates from fuzzy matching; exact
	// catalog hits are still allowed at any length.
	MinFuzzyLen int
	// LengthTolerance bounds the alias length relative to the candidate
	// (0.4 means within ±40%), guarding against short substrings matching
	// long aliases.
	LengthTolerance float64
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:       85,
		MaxNGram:        3,
		MinFuzzyLen:     3,
		LengthTolerance: 0.4,
	}
}

// Skills extracts canonical skills from text by sliding candidate n-grams
// over the catalog's aliases. A candidate is accepted on an exact normalized
// catalog hit, or on fuzzy similarity >= Threshold with the alias length
// inside the tolerance band. When several aliases match one window, the
// longer alias wins, then the higher similarity. Result is sorted and unique.
func Skills(text string, cat *catalog.Catalog, opts Options) []string {
	words := splitWords(text)
	if len(words) == 0 {
		return nil
	}

	lev := metrics.NewLevenshtein()
	found := make(map[string]struct{})

	for size := 1; size <= opts.MaxNGram; size++ {
		for i := 0; i+size <= len(words); i++ {
			candidate := strings.Join(words[i:i+size], " ")
			if name, ok := matchCandidate(candidate, cat, opts, lev); ok {
				found[name] = struct{}{}
			}
		}
	}

	if len(found) == 0 {
		return nil
	}
	skills := make([]string, 0, len(found))
	for name := range found {
		skills = append(skills, name)
	}
	sort.Strings(skills)
	return skills
}

// matchCandidate resolves one token window to a canonical skill, if any.
func matchCandidate(candidate string, cat *catalog.Catalog, opts Options, lev *metrics.Levenshtein) (string, bool) {
	norm := catalog.NormalizeToken(candidate)
	if norm == "" {
		return "", false
	}

	// Exact normalized hit first; this is the only path open to very short
	// tokens like "go" or "c#".
	if name, ok := cat.Canonicalize(candidate); ok {
		return name, true
	}

	candLen := len([]rune(norm))
	if candLen < opts.MinFuzzyLen {
		return "", false
	}

	minLen := int(float64(candLen) * (1 - opts.LengthTolerance))
	maxLen := int(float64(candLen) * (1 + opts.LengthTolerance))

	best := ""
	bestAliasLen := -1
	bestScore := 0.0
	for _, alias := range cat.Aliases() {
		aliasLen := len([]rune(alias.Normalized))
		if aliasLen < minLen || aliasLen > maxLen {
			continue
		}
		score := strutil.Similarity(norm, alias.Normalized, lev) * 100
		if score < opts.Threshold {
			continue
		}
		if aliasLen > bestAliasLen || (aliasLen == bestAliasLen && score > bestScore) {
			best = alias.Canonical
			bestAliasLen = aliasLen
			bestScore = score
		}
	}

	if best == "" {
		return "", false
	}
	return best, true
}

// splitWords splits text into word tokens, keeping runes that carry meaning
// inside tech terms ('+', '#', '.', '-').
func splitWords(text string) []string {
	var words []string
	var word strings.Builder

	flush := func() {
		w := strings.Trim(word.String(), ".-")
		word.Reset()
		if w != "" {
			words = append(words, w)
		}
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' || r == '-' {
			word.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()

	return words
}
