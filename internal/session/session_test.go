package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/filtering"
	"github.com/spigell/resume-analyzer/internal/matching"
	"github.com/spigell/resume-analyzer/internal/resume"
	"go.uber.org/zap"
)

type failingAssessor struct{}

func (failingAssessor) Assess(context.Context, *resume.Record) (*ai.AssessmentResult, error) {
	return nil, errors.New("provider unavailable")
}

func newPipeline(assessor ai.Assessor, filters ...filtering.Filter) *Pipeline {
	return &Pipeline{
		Parser:   resume.NewParser(nil),
		Matcher:  matching.New(catalog.Default(), nil),
		Filters:  filtering.New(filters, nil),
		Assessor: assessor,
		Logger:   zap.NewNop(),
	}
}

func TestAnalyzeBrokenDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	analysis, err := newPipeline(nil, filtering.NewTopN(3, nil)).Analyze(context.Background(), path, resume.FormatPDF)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if analysis.ID == "" {
		t.Fatal("expected analysis id")
	}
	if !analysis.Record.Failed() {
		t.Fatal("expected parse error on record")
	}
	if analysis.Matches.Len() != 3 {
		t.Fatalf("expected 3 matches, got %d", analysis.Matches.Len())
	}
	for _, match := range analysis.Matches.Items {
		if match.SkillMatchScore != 0 {
			t.Fatalf("expected zero skill score for failed record, got %v", match.SkillMatchScore)
		}
	}
	if analysis.Assessment == nil || analysis.Assessment.Source != ai.SourceFallback || analysis.Assessment.OverallScore != 40 {
		t.Fatalf("expected fallback assessment, got %+v", analysis.Assessment)
	}
}

func TestAnalyzeFailingAssessor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.docx")
	if err := os.WriteFile(path, []byte("not a docx"), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	analysis, err := newPipeline(failingAssessor{}).Analyze(context.Background(), path, resume.FormatDOCX)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if analysis.Assessment.Source != ai.SourceFallback {
		t.Fatalf("expected fallback assessment, got %+v", analysis.Assessment)
	}
}

func TestAnalyzeUnsupportedFormat(t *testing.T) {
	_, err := newPipeline(nil).Analyze(context.Background(), "cv.txt", resume.Format("txt"))

	var unsupported *resume.UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
}

func TestAnalysisOutputs(t *testing.T) {
	record := resume.NewParser(nil).ParseText("Jane Doe\njane@example.com\nPython and SQL developer. Built dashboards.")
	analysis := &Analysis{
		ID:      "test",
		File:    "cv.pdf",
		Record:  record,
		Matches: matching.New(catalog.Default(), nil).Match(record, 2),
	}
	analysis.Assessment, _ = ai.Fallback{}.Assess(context.Background(), record)

	var out bytes.Buffer
	if err := analysis.WriteSummary(&out); err != nil {
		t.Fatalf("write summary: %v", err)
	}
	for _, want := range []string{"jane@example.com", "programming: python", "Job matches:", "Assessment (fallback)"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("summary misses %q:\n%s", want, out.String())
		}
	}

	path := filepath.Join(t.TempDir(), "analysis.json")
	if err := analysis.WriteFile(path); err != nil {
		t.Fatalf("write file: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode analysis: %v", err)
	}
	if decoded["id"] != "test" {
		t.Fatalf("unexpected id: %v", decoded["id"])
	}
	matches, ok := decoded["matches"].(map[string]any)
	if !ok {
		t.Fatalf("expected matches object, got %T", decoded["matches"])
	}
	items, ok := matches["Items"].([]any)
	if !ok || len(items) != 2 {
		t.Fatalf("expected 2 matches, got %v", matches["Items"])
	}
	first := items[0].(map[string]any)
	if _, ok := first["title"]; !ok {
		t.Fatalf("expected embedded posting fields, got %v", first)
	}
}

func TestWriteImprovementPlan(t *testing.T) {
	record := resume.NewParser(nil).ParseText("Python developer")
	assessment, _ := ai.Fallback{}.Assess(context.Background(), record)

	tests := []struct {
		name     string
		analysis *Analysis
		want     []string
	}{
		{
			name:     "with assessment",
			analysis: &Analysis{Record: record, Assessment: assessment},
			want: []string{
				"  - " + assessment.SkillGaps[0],
				"  1. " + assessment.ImprovementSuggestions[0],
			},
		},
		{
			name:     "without assessment",
			analysis: &Analysis{Record: record},
			want: []string{
				"No specific skill gaps identified.",
				"Enable AI analysis for personalized suggestions.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := tt.analysis.WriteImprovementPlan(&out); err != nil {
				t.Fatalf("write plan: %v", err)
			}
			for _, want := range append(tt.want, "ATS optimization tips:", "  - "+ATSTips[0], "  - "+ATSTips[len(ATSTips)-1]) {
				if !strings.Contains(out.String(), want) {
					t.Fatalf("plan misses %q:\n%s", want, out.String())
				}
			}
		})
	}
}
