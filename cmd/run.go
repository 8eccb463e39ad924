package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/ai/gemini"
	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/filtering"
	"github.com/spigell/resume-analyzer/internal/matching"
	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/secrets"
	"github.com/spigell/resume-analyzer/internal/session"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	PromptShowRecord          = "Show parsed resume"
	PromptShowMatches         = "Show job matches"
	PromptShowAssessment      = "Show assessment"
	PromptImprovementPlan     = "Show improvement plan"
	PromptReportByCompanies   = "Report by companies"
	PromptAnalysisToFile      = "Dump analysis to file"
	PromptAppendToExcludeFile = "Append matches to exclude file"
	PromptExit                = "Exit"
)

var errExit = errors.New("exit requested")

var runCmd = &cobra.Command{
	Use:   "run <resume file>",
	Short: "Parse a resume, match it against the catalog and assess it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("format", "f", "", "resume format: pdf or docx. Derived from the file extension when unset")
	runCmd.Flags().IntP("top-n", "n", 5, "number of job matches to keep")
	runCmd.Flags().StringP("output", "o", "", "write the analysis as JSON to this file")
	runCmd.Flags().BoolP("auto-approve", "y", false, "print the summary and exit without the interactive menu")

	viper.BindPFlag("resume.format", runCmd.Flags().Lookup("format"))
	viper.BindPFlag("matching.top-n", runCmd.Flags().Lookup("top-n"))
	viper.BindPFlag("report.output", runCmd.Flags().Lookup("output"))
}

// run is the main command for the cli.
func run(cmd *cobra.Command, path string) {
	ctx := context.Background()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting the resume-analyzer", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	format, err := resolveFormat(config.Resume.Format, path)
	if err != nil {
		logger.Fatal("resolving resume format", zap.Error(err), zap.String("hint", "pass --format pdf or --format docx"))
	}

	postings, err := catalog.Load(config.Matching.CatalogFile)
	if err != nil {
		logger.Fatal("loading the posting catalog", zap.Error(err))
	}

	pipeline := &session.Pipeline{
		Parser:   resume.NewParser(logger),
		Matcher:  matching.New(postings, logger),
		Filters:  prepareFilters(config.Matching, logger),
		Assessor: prepareAssessor(ctx, config.AI, logger),
		Timeout:  config.AI.Timeout,
		Logger:   logger,
	}

	analysis, err := pipeline.Analyze(ctx, path, format)
	if err != nil {
		logger.Fatal("analyzing resume", zap.Error(err))
	}

	if output := strings.TrimSpace(config.Report.Output); output != "" {
		if err := analysis.WriteFile(output); err != nil {
			logger.Fatal("writing the analysis", zap.Error(err))
		}
		logger.Info("analysis written", zap.String("filename", output))
	}

	if err := analysis.WriteSummary(os.Stdout); err != nil {
		logger.Fatal("printing the summary", zap.Error(err))
	}

	if auto, _ := cmd.Flags().GetBool("auto-approve"); auto {
		return
	}

	prompt := promptui.Select{
		Label: "What next?",
		Items: menuItems(config.Matching.ExcludeFile),
	}

	for {
		_, action, err := prompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, logger, config, analysis); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

func menuItems(excludeFile string) []string {
	items := []string{PromptShowRecord, PromptShowMatches, PromptShowAssessment, PromptImprovementPlan, PromptReportByCompanies, PromptAnalysisToFile}
	if strings.TrimSpace(excludeFile) != "" {
		items = append(items, PromptAppendToExcludeFile)
	}
	return append(items, PromptExit)
}

func handleAction(action string, logger *zap.Logger, config *Config, analysis *session.Analysis) error {
	switch action {
	case PromptShowRecord:
		return printJSON(analysis.Record)
	case PromptShowMatches:
		return printJSON(analysis.Matches.Items)
	case PromptShowAssessment:
		return printJSON(analysis.Assessment)
	case PromptImprovementPlan:
		return analysis.WriteImprovementPlan(os.Stdout)
	case PromptReportByCompanies:
		pretty, _ := json.MarshalIndent(analysis.Matches.ReportByCompany(), "", "  ")
		logger.Info(string(pretty), zap.Int("matches count", analysis.Matches.Len()))
		return nil
	case PromptAnalysisToFile:
		filename, err := analysis.DumpToTmpFile()
		if err != nil {
			return fmt.Errorf("dump analysis to file: %w", err)
		}
		logger.Info("dumping analysis to file", zap.String("filename", filename))
		return nil
	case PromptAppendToExcludeFile:
		return appendToExcludeFile(config.Matching.ExcludeFile, analysis.Matches, logger)
	case PromptExit:
		logger.Info("exiting", zap.String("reason", "requested from prompt"))
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

func appendToExcludeFile(path string, matches *matching.Matches, logger *zap.Logger) error {
	excluded, err := catalog.GetExcludedFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		excluded, err = &catalog.ExcludedPostings{}, nil
	}
	if err != nil {
		return fmt.Errorf("reading exclude file: %w", err)
	}

	excluded.Append(matches.ToExcluded())

	if err := excluded.ToFile(path); err != nil {
		return fmt.Errorf("writing exclude file: %w", err)
	}

	logger.Info("appended to exclude file", zap.String("filename", path), zap.Int("count", matches.Len()))

	matches.Exclude(catalog.PostingIDField, excluded.IDs())
	return nil
}

func printJSON(v any) error {
	pretty, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(pretty))
	return nil
}

func resolveFormat(declared, path string) (resume.Format, error) {
	if strings.TrimSpace(declared) != "" {
		return resume.ParseFormat(declared)
	}
	return resume.FormatFromPath(path)
}

func prepareFilters(cfg *MatchingConfig, logger *zap.Logger) *filtering.Filtering {
	var companies []string
	if cfg.Exclude != nil {
		companies = cfg.Exclude.Companies
	}

	topN := cfg.TopN
	if topN <= 0 {
		topN = matching.DefaultTopN
	}

	return filtering.New([]filtering.Filter{
		filtering.NewExcludeFile(cfg.ExcludeFile, logger),
		filtering.NewExcludedCompanies(companies, logger),
		filtering.NewExperienceLevel(cfg.ExperienceLevels, logger),
		filtering.NewMinimumScore(cfg.MinimumScore, logger),
		filtering.NewTopN(topN, logger),
	}, logger)
}

// prepareAssessor always returns a usable assessor. Any problem building the
// hosted provider leaves only the deterministic fallback in place.
func prepareAssessor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) ai.Assessor {
	if !cfg.Enabled {
		return ai.Guard(nil, ai.Fallback{}, logger)
	}

	primary, err := newGeminiAssessor(ctx, cfg, logger)
	if err != nil {
		logger.Warn("skipping AI assessment", zap.Error(err))
		return ai.Guard(nil, ai.Fallback{}, logger)
	}

	return ai.Guard(primary, ai.Fallback{}, logger)
}

func newGeminiAssessor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Assessor, error) {
	provider := strings.TrimSpace(strings.ToLower(cfg.Provider))
	if provider != "" && provider != ai.SourceGemini {
		return nil, fmt.Errorf("unsupported ai provider: %s", cfg.Provider)
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name:  "gemini api key",
		File:  cfg.Gemini.APIKeyFile,
		Value: cfg.Gemini.APIKey,
		Env:   "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	genLogger := logger.With(
		zap.String("provider", ai.SourceGemini),
		zap.String("model", cfg.Gemini.Model),
		zap.Int("ai_retry_attempts", cfg.Gemini.MaxRetries),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	return gemini.NewAssessor(generator, cfg.Gemini.MaxLogLength, logger), nil
}
