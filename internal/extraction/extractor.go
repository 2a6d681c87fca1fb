// Package extraction pulls contact entities and canonical skills out of raw
// resume text.
package extraction

import (
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/catalog"
	"github.com/jonathan/resume-ranker/internal/types"
)

// Extractor binds a skill catalog and matching options for repeated use. It
// holds no mutable state and is safe for concurrent use.
type Extractor struct {
	catalog *catalog.Catalog
	opts    Options
	log     *zap.Logger
}

// New creates an Extractor. A nil logger falls back to a no-op logger.
func New(cat *catalog.Catalog, opts Options, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{catalog: cat, opts: opts, log: log}
}

// Extract builds a Profile from raw resume text. Empty text yields a profile
// with empty entity sets, never an error.
func (e *Extractor) Extract(sourceID, text string) *types.Profile {
	profile := &types.Profile{
		SourceID: sourceID,
		RawText:  text,
		Emails:   Emails(text),
		Phones:   Phones(text),
		Skills:   Skills(text, e.catalog, e.opts),
	}

	e.log.Debug("profile extracted",
		zap.String("source_id", sourceID),
		zap.Int("emails", len(profile.Emails)),
		zap.Int("phones", len(profile.Phones)),
		zap.Int("skills", len(profile.Skills)))

	return profile
}
