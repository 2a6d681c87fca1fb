// Package engine orchestrates per-resume analysis and batch ranking. It is
// the only component that sees all three sub-scores together.
package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-ranker/internal/catalog"
	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/experience"
	"github.com/jonathan/resume-ranker/internal/extraction"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/similarity"
	"github.com/jonathan/resume-ranker/internal/types"
)

// ErrEmptyJob is returned when no job description text is provided. This is
// the one hard precondition: without a job there is nothing to score against.
var ErrEmptyJob = fmt.Errorf("job description text is empty")

// Resume is one candidate input. SourceID may be empty; the engine then
// assigns a positional one so results stay deterministic.
type Resume struct {
	SourceID string
	Text     string
}

// Engine runs analyses against one immutable catalog and configuration.
// Safe for concurrent use.
type Engine struct {
	extractor *extraction.Extractor
	opts      extraction.Options
	catalog   *catalog.Catalog
	cfg       *config.Config
	log       *zap.Logger

	// now is injectable so "present" resolution is testable.
	now func() time.Time
}

// New creates an Engine. A nil config uses defaults; a nil logger is no-op.
func New(cat *catalog.Catalog, cfg *config.Config, log *zap.Logger) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}

	opts := extraction.DefaultOptions()
	opts.Threshold = cfg.FuzzyThreshold
	opts.MaxNGram = cfg.MaxNGram

	return &Engine{
		extractor: extraction.New(cat, opts, log),
		opts:      opts,
		catalog:   cat,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// BuildJob parses a job description into the shared, read-only requirement
// used by every candidate scoring in a batch.
func (e *Engine) BuildJob(jobText string) (types.JobRequirement, error) {
	if strings.TrimSpace(jobText) == "" {
		return types.JobRequirement{}, ErrEmptyJob
	}

	target := e.cfg.TargetYears
	if target == 0 {
		// A JD phrase like "7+ years of experience" sets the target;
		// otherwise the scoring default applies.
		target = experience.MentionYears(jobText)
	}

	return types.JobRequirement{
		RawText:        jobText,
		RequiredSkills: extraction.Skills(jobText, e.catalog, e.opts),
		TargetYears:    target,
	}, nil
}

// AnalyzeOne scores a single resume against a job description.
func (e *Engine) AnalyzeOne(ctx context.Context, jobText, resumeText string) (*types.ScoreBreakdown, error) {
	job, err := e.BuildJob(jobText)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	breakdown := e.scoreOne(job, Resume{SourceID: "candidate", Text: resumeText})
	return &breakdown, nil
}

// AnalyzeBatch scores every resume against the job description in parallel
// and returns the complete ranking. The result is only emitted once all
// per-resume computations finish; a cancelled context abandons the whole
// batch rather than returning a partial ranking.
func (e *Engine) AnalyzeBatch(ctx context.Context, jobText string, resumes []Resume) (*types.RankedResult, error) {
	job, err := e.BuildJob(jobText)
	if err != nil {
		return nil, err
	}

	named := make([]Resume, len(resumes))
	for i, resume := range resumes {
		if resume.SourceID == "" {
			resume.SourceID = fmt.Sprintf("resume_%03d", i+1)
		}
		named[i] = resume
	}

	results := make([]types.ScoreBreakdown, len(named))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers())
	for i, resume := range named {
		i, resume := i, resume
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = e.scoreOne(job, resume)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	ranking.Sort(results)

	return &types.RankedResult{
		BatchID:    batchID(jobText, named),
		AnalyzedAt: e.analysisMonth(),
		Job:        job,
		Candidates: results,
	}, nil
}

// scoreOne runs the three independent computations for one resume. A panic
// while processing a malformed resume degrades that candidate to worst-case
// defaults instead of aborting its siblings.
func (e *Engine) scoreOne(job types.JobRequirement, resume Resume) (breakdown types.ScoreBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			e.log.Warn("resume analysis panicked, using worst-case defaults",
				zap.String("source_id", resume.SourceID), zap.Any("panic", r))
			breakdown = ranking.Score(job, &types.Profile{SourceID: resume.SourceID}, 0)
		}
	}()

	profile := e.extractor.Extract(resume.SourceID, resume.Text)
	profile.ExperienceMonths = experience.TotalMonths(resume.Text, e.now(), e.log)
	contentScore := similarity.Score(job.RawText, resume.Text)

	return ranking.Score(job, profile, contentScore)
}

// workers returns the configured fan-out width, minimum 1.
func (e *Engine) workers() int {
	if e.cfg.Workers < 1 {
		return 1
	}
	return e.cfg.Workers
}

// analysisMonth is the timestamp recorded on results, truncated to month
// granularity to match how "present" resolves in date ranges.
func (e *Engine) analysisMonth() time.Time {
	now := e.now().UTC()
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// batchID derives a stable UUID from the batch inputs, so identical inputs
// produce identical results byte for byte.
func batchID(jobText string, resumes []Resume) string {
	var sb strings.Builder
	sb.WriteString(jobText)
	for _, resume := range resumes {
		sb.WriteByte(0)
		sb.WriteString(resume.SourceID)
		sb.WriteByte(0)
		sb.WriteString(resume.Text)
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(sb.String())).String()
}
