package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/filtering"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/matching"
	"github.com/spigell/resume-analyzer/internal/resume"
	"go.uber.org/zap"
)

// Analysis is everything produced for one resume. It is owned by the caller
// and never shared between runs.
type Analysis struct {
	ID         string               `json:"id"`
	File       string               `json:"file"`
	Format     resume.Format        `json:"format"`
	CreatedAt  time.Time            `json:"created_at"`
	Record     *resume.Record       `json:"record"`
	Matches    *matching.Matches    `json:"matches"`
	Assessment *ai.AssessmentResult `json:"assessment"`
}

// Pipeline wires the parser, matcher, filters and assessor together.
type Pipeline struct {
	Parser   *resume.Parser
	Matcher  *matching.Matcher
	Filters  *filtering.Filtering
	Assessor ai.Assessor
	// Timeout bounds the assessment call. Zero means no limit.
	Timeout time.Duration
	Logger  *zap.Logger
}

// Analyze runs the whole pipeline for one document. Only an unsupported
// format or a broken filter configuration is returned as an error.
func (p *Pipeline) Analyze(ctx context.Context, path string, format resume.Format) (*Analysis, error) {
	if p.Parser == nil || p.Matcher == nil {
		return nil, errors.New("parser and matcher are required")
	}

	analysis := &Analysis{
		ID:        uuid.NewString(),
		File:      path,
		Format:    format,
		CreatedAt: time.Now().UTC(),
	}

	log := logger.WithFields(p.Logger, logger.AnalysisFields(analysis.ID, path, string(format))...)

	record, err := p.Parser.Parse(path, format)
	if err != nil {
		return nil, fmt.Errorf("parse resume: %w", err)
	}
	analysis.Record = record

	if record.Failed() {
		log.Warn("resume parsed with error", zap.String("parse_error", record.ParseError))
	} else {
		log.Info("resume parsed",
			zap.Int("skills", record.Skills.Count()),
			zap.Int("experience_entries", len(record.Experience)),
			zap.Int("education_entries", len(record.Education)),
		)
	}

	matches := p.Matcher.Match(record, 0)
	if p.Filters != nil {
		matches, err = p.Filters.RunFilters(ctx, matches)
		if err != nil {
			return nil, fmt.Errorf("filter matches: %w", err)
		}
	}
	analysis.Matches = matches
	log.Info("postings matched", zap.Int("count", matches.Len()))

	assessor := p.Assessor
	if assessor == nil {
		assessor = ai.Guard(nil, ai.Fallback{}, log)
	}

	assessCtx := ctx
	if p.Timeout > 0 {
		var cancel context.CancelFunc
		assessCtx, cancel = context.WithTimeout(ctx, p.Timeout)
		defer cancel()
	}

	assessment, err := assessor.Assess(assessCtx, record)
	if err != nil {
		log.Warn("assessment failed, using fallback", zap.Error(err))
		assessment, _ = ai.Fallback{}.Assess(ctx, record)
	}
	analysis.Assessment = assessment
	log.Info("resume assessed",
		zap.String("source", assessment.Source),
		zap.Int("overall_score", assessment.OverallScore),
	)

	return analysis, nil
}

// WriteFile stores the analysis as indented JSON.
func (a *Analysis) WriteFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(a)
}

func (a *Analysis) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "analysis_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(a); err != nil {
		return "", err
	}
	return file.Name(), nil
}
