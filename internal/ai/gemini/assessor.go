package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"github.com/mitchellh/mapstructure"
	"github.com/spigell/resume-analyzer/internal/ai"
	"github.com/spigell/resume-analyzer/internal/logger"
	"github.com/spigell/resume-analyzer/internal/resume"
	"github.com/spigell/resume-analyzer/internal/utils"
	"go.uber.org/zap"
)

const (
	systemInstruction   = "You are an expert resume analyst and career coach. Provide detailed, constructive feedback."
	maxResumeTextRunes  = 3000
	defaultMaxLogLength = 200
)

// ErrNoJSON is returned when the model reply holds no JSON object.
var ErrNoJSON = errors.New("gemini response does not contain a json object")

//go:embed prompt.md
var promptTemplate string

type contentGenerator interface {
	GenerateContent(ctx context.Context, system, message string) (string, error)
	Model() string
}

// Assessor asks Gemini for a qualitative review of a parsed resume.
type Assessor struct {
	generator contentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewAssessor(generator contentGenerator, maxLogLength int, log *zap.Logger) *Assessor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &Assessor{
		generator: generator,
		logger:    logger.WithCommonFields(log, ai.SourceGemini, generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (a *Assessor) Assess(ctx context.Context, record *resume.Record) (*ai.AssessmentResult, error) {
	if record == nil {
		return nil, errors.New("resume record is required")
	}
	if record.Failed() {
		return nil, fmt.Errorf("resume was not parsed: %s", record.ParseError)
	}

	prompt, err := buildPrompt(record)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content request",
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", utils.TruncateForLog(prompt, a.maxLogLen)),
	)

	raw, err := a.generator.GenerateContent(ctx, systemInstruction, prompt)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("gemini generate content response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", utils.TruncateForLog(raw, a.maxLogLen)),
	)

	return parseResponse(raw)
}

func buildPrompt(record *resume.Record) (string, error) {
	skills, err := json.Marshal(record.Skills)
	if err != nil {
		return "", fmt.Errorf("marshal skills: %w", err)
	}
	experience, err := json.Marshal(record.Experience)
	if err != nil {
		return "", fmt.Errorf("marshal experience: %w", err)
	}
	education, err := json.Marshal(record.Education)
	if err != nil {
		return "", fmt.Errorf("marshal education: %w", err)
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Resume:\n{{RESUME_TEXT}}\n\nSkills: {{SKILLS}}\nExperience: {{EXPERIENCE}}\nEducation: {{EDUCATION}}\n\nJSON Response:"
	}

	replacer := strings.NewReplacer(
		"{{RESUME_TEXT}}", truncateRunes(record.RawText, maxResumeTextRunes),
		"{{SKILLS}}", string(skills),
		"{{EXPERIENCE}}", string(experience),
		"{{EDUCATION}}", string(education),
	)
	return replacer.Replace(template), nil
}

func parseResponse(raw string) (*ai.AssessmentResult, error) {
	cleaned, ok := extractJSON(raw)
	if !ok {
		return nil, ErrNoJSON
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	result := &ai.AssessmentResult{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	result.OverallScore = ai.ClampScore(result.OverallScore)
	result.ATSOptimizationScore = ai.ClampScore(result.ATSOptimizationScore)
	result.Source = ai.SourceGemini

	return result, nil
}

// extractJSON returns the outermost object of the reply, tolerating code fences and prose.
func extractJSON(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
