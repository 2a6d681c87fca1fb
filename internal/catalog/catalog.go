// Package catalog provides the canonical skill catalog: an immutable mapping
// of canonical skill names to their accepted surface-form aliases.
package catalog

import (
	"strings"

	"go.uber.org/zap"
)

// Entry represents one canonical skill and its accepted alias spellings.
type Entry struct {
	Name     string   `json:"name"`
	Category string   `json:"category,omitempty"`
	Aliases  []string `json:"aliases,omitempty"`
}

// Alias pairs one surface form with the canonical skill that owns it.
type Alias struct {
	Canonical  string
	Surface    string
	Normalized string
}

// Catalog is an immutable, ordered skill catalog. It is safe for concurrent
// readers once constructed.
type Catalog struct {
	entries []Entry
	byNorm  map[string]string
	aliases []Alias
}

// New builds a Catalog from entries, preserving order. Entries with a blank
// name are skipped with a warning. When two canonical skills claim the same
// normalized alias, the earlier entry wins.
func New(entries []Entry, log *zap.Logger) *Catalog {
	if log == nil {
		log = zap.NewNop()
	}

	c := &Catalog{
		byNorm: make(map[string]string),
	}

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			log.Warn("skipping catalog entry with blank name", zap.String("category", entry.Category))
			continue
		}

		kept := Entry{Name: name, Category: entry.Category}
		surfaces := append([]string{name}, entry.Aliases...)
		for _, surface := range surfaces {
			surface = strings.TrimSpace(surface)
			if surface == "" {
				continue
			}
			norm := NormalizeToken(surface)
			if norm == "" {
				log.Warn("skipping alias that normalizes to nothing",
					zap.String("skill", name), zap.String("alias", surface))
				continue
			}
			if owner, taken := c.byNorm[norm]; taken {
				if owner != name {
					log.Warn("alias already owned by another skill",
						zap.String("alias", surface), zap.String("owner", owner), zap.String("skill", name))
				}
				continue
			}
			c.byNorm[norm] = name
			c.aliases = append(c.aliases, Alias{Canonical: name, Surface: surface, Normalized: norm})
			if surface != name {
				kept.Aliases = append(kept.Aliases, surface)
			}
		}

		c.entries = append(c.entries, kept)
	}

	return c
}

// Canonicalize resolves a token to its canonical skill name. The lookup is
// case-insensitive and ignores punctuation, so "React.js" and "ReactJS"
// resolve to the same skill.
func (c *Catalog) Canonicalize(token string) (string, bool) {
	norm := NormalizeToken(token)
	if norm == "" {
		return "", false
	}
	name, ok := c.byNorm[norm]
	return name, ok
}

// Aliases returns every registered surface form paired with its canonical
// skill, in catalog order. The slice is shared; callers must not mutate it.
func (c *Catalog) Aliases() []Alias {
	return c.aliases
}

// Entries returns the catalog entries in load order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}

// Len returns the number of canonical skills.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// NormalizeToken lower-cases a token and strips punctuation and whitespace,
// keeping letters, digits and the tech-significant '+' and '#' runes so that
// "C++" and "C#" stay distinct.
func NormalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '+', r == '#':
			b.WriteRune(r)
		}
	}
	return b.String()
}
