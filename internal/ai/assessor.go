package ai

import (
	"context"

	"github.com/spigell/resume-analyzer/internal/resume"
)

const (
	SourceGemini   = "gemini"
	SourceFallback = "fallback"
)

// AssessmentResult is a qualitative review of a resume. Scores are 0-100.
type AssessmentResult struct {
	OverallScore           int      `json:"overall_score" mapstructure:"overall_score"`
	Strengths              []string `json:"strengths" mapstructure:"strengths"`
	Weaknesses             []string `json:"weaknesses" mapstructure:"weaknesses"`
	SkillGaps              []string `json:"skill_gaps" mapstructure:"skill_gaps"`
	ImprovementSuggestions []string `json:"improvement_suggestions" mapstructure:"improvement_suggestions"`
	CareerRecommendations  []string `json:"career_recommendations" mapstructure:"career_recommendations"`
	ATSOptimizationScore   int      `json:"ats_optimization_score" mapstructure:"ats_optimization_score"`
	KeyAchievements        []string `json:"key_achievements" mapstructure:"key_achievements"`

	// Source names the provider that produced the result.
	Source string `json:"source" mapstructure:"-"`
}

type Assessor interface {
	Assess(ctx context.Context, record *resume.Record) (*AssessmentResult, error)
}

// ClampScore limits a score to the 0-100 range.
func ClampScore(score int) int {
	switch {
	case score < 0:
		return 0
	case score > 100:
		return 100
	default:
		return score
	}
}
