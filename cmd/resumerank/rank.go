package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-ranker/internal/bias"
	"github.com/jonathan/resume-ranker/internal/catalog"
	"github.com/jonathan/resume-ranker/internal/config"
	"github.com/jonathan/resume-ranker/internal/engine"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/observability"
	"github.com/jonathan/resume-ranker/internal/ranking"
	"github.com/jonathan/resume-ranker/internal/report"
	"github.com/jonathan/resume-ranker/internal/types"
)

var rankCmd = &cobra.Command{
	Use:   "rank --job <job-file> <resume-file>...",
	Short: "Rank resumes against a job description",
	Long:  "Scores each resume file against the job description and prints the ranking with per-candidate score breakdowns and explanations. Inputs may be plain text or saved HTML pages.",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRank,
}

var (
	rankJobFile     string
	rankConfigFile  string
	rankSkillsFile  string
	rankTargetYears float64
	rankWorkers     int
	rankTopN        int
	rankReportFile  string
	rankBiasFile    string
	rankJSON        bool
	rankVerbose     bool
	rankLogJSON     bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJobFile, "job", "j", "", "Path to the job description file (required)")
	rankCmd.Flags().StringVarP(&rankConfigFile, "config", "c", "", "Path to a JSON config file")
	rankCmd.Flags().StringVar(&rankSkillsFile, "skills", "", "Path to a custom skills dataset JSON file")
	rankCmd.Flags().Float64Var(&rankTargetYears, "target-years", 0, "Years of experience for a full experience score (overrides config and JD)")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "Number of resumes analyzed in parallel (overrides config)")
	rankCmd.Flags().IntVar(&rankTopN, "top", 0, "Number of candidates in the comparison report (overrides config)")
	rankCmd.Flags().StringVar(&rankReportFile, "report", "", "Write a markdown comparison report to this path")
	rankCmd.Flags().StringVar(&rankBiasFile, "bias-report", "", "Write per-candidate bias findings JSON to this path")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print the full ranked result as JSON instead of text")
	rankCmd.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print intermediate stage summaries")
	rankCmd.Flags().BoolVar(&rankLogJSON, "log-json", false, "Emit structured JSON logs instead of console logs")

	if err := rankCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	log, err := newLogger(rankLogJSON)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := loadRankConfig()
	if err != nil {
		return err
	}

	cat, err := loadCatalog(cfg, log)
	if err != nil {
		return err
	}

	jobText, err := ingestion.ReadDocument(rankJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job description: %w", err)
	}

	resumes := make([]engine.Resume, 0, len(args))
	for _, path := range args {
		text, err := ingestion.ReadDocument(path)
		if err != nil {
			return fmt.Errorf("failed to read resume: %w", err)
		}
		resumes = append(resumes, engine.Resume{
			SourceID: ingestion.SourceID(path),
			Text:     text,
		})
	}

	eng := engine.New(cat, cfg, log)
	result, err := eng.AnalyzeBatch(cmd.Context(), jobText, resumes)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if rankVerbose {
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintJobRequirement(&result.Job)
		printer.PrintRanking(result)
	}

	if rankBiasFile != "" || rankVerbose {
		if err := writeBiasReports(resumes, rankVerbose); err != nil {
			return err
		}
	}

	if rankReportFile != "" {
		md := report.Comparison(result, cfg.TopN)
		if err := os.WriteFile(rankReportFile, []byte(md), 0644); err != nil {
			return fmt.Errorf("failed to write comparison report: %w", err)
		}
		log.Info("wrote comparison report", zap.String("path", rankReportFile))
	}

	if rankJSON {
		return printJSON(result)
	}
	printRanking(result)
	return nil
}

// loadRankConfig resolves the effective config: file values over defaults,
// then explicit flags over both.
func loadRankConfig() (*config.Config, error) {
	cfg := config.Default()
	if rankConfigFile != "" {
		loaded, err := config.Load(rankConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if rankSkillsFile != "" {
		cfg.SkillsDataset = rankSkillsFile
	}
	if rankTargetYears > 0 {
		cfg.TargetYears = rankTargetYears
	}
	if rankWorkers > 0 {
		cfg.Workers = rankWorkers
	}
	if rankTopN > 0 {
		cfg.TopN = rankTopN
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadCatalog loads the skills dataset named by the resolved config (a
// --skills flag lands in cfg.SkillsDataset before this runs), falling back
// to the embedded catalog.
func loadCatalog(cfg *config.Config, log *zap.Logger) (*catalog.Catalog, error) {
	if cfg.SkillsDataset == "" {
		return catalog.Default(log), nil
	}
	cat, err := catalog.Load(cfg.SkillsDataset, log)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills dataset: %w", err)
	}
	return cat, nil
}

// writeBiasReports runs the bias scan over the original resume texts and
// writes findings as JSON, printing them too in verbose mode.
func writeBiasReports(resumes []engine.Resume, verbose bool) error {
	reports := make([]*bias.Report, 0, len(resumes))
	for _, resume := range resumes {
		reports = append(reports, bias.Analyze(resume.SourceID, resume.Text, time.Now()))
	}

	if verbose {
		observability.NewPrinter(os.Stderr).PrintBiasReports(reports)
	}

	if rankBiasFile == "" {
		return nil
	}
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bias reports: %w", err)
	}
	if err := os.WriteFile(rankBiasFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write bias report: %w", err)
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

func printRanking(result *types.RankedResult) {
	fmt.Fprintf(os.Stdout, "Ranked %d candidates (batch %s)\n\n", len(result.Candidates), result.BatchID)
	for i := range result.Candidates {
		cand := &result.Candidates[i]
		fmt.Fprintf(os.Stdout, "%2d. %-24s %5.1f  %s\n",
			i+1, cand.SourceID, cand.FinalScore, ranking.Verdict(cand.FinalScore))
		fmt.Fprintf(os.Stdout, "    %s\n", cand.Explanation)
	}
}

// newLogger builds the CLI logger. JSON logs go through the production
// config; console logs use the development config at warn level so normal
// runs stay quiet.
func newLogger(jsonLogs bool) (*zap.Logger, error) {
	if jsonLogs {
		return zap.NewProduction()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
