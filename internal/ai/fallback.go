package ai

import (
	"context"

	"github.com/spigell/resume-analyzer/internal/resume"
)

const (
	fallbackScoreCap      = 80
	fallbackScoreBase     = 40
	fallbackScorePerSkill = 6
	fallbackATSScore      = 70
)

// Fallback derives an assessment from the skill count alone. It never fails.
type Fallback struct{}

func (Fallback) Assess(_ context.Context, record *resume.Record) (*AssessmentResult, error) {
	skills := 0
	if record != nil {
		skills = record.Skills.Count()
	}

	return &AssessmentResult{
		OverallScore: min(fallbackScoreCap, fallbackScorePerSkill*skills+fallbackScoreBase),
		Strengths:    []string{"Technical proficiency", "Industry experience"},
		Weaknesses:   []string{"Limited detail in achievements", "Could improve formatting"},
		SkillGaps:    []string{"Advanced certifications", "Specialized tools"},
		ImprovementSuggestions: []string{
			"Quantify achievements with numbers",
			"Add more project details",
			"Include relevant certifications",
		},
		CareerRecommendations: []string{"Technical roles", "Engineering positions"},
		ATSOptimizationScore:  fallbackATSScore,
		KeyAchievements:       []string{"Demonstrated technical capabilities", "Project experience"},
		Source:                SourceFallback,
	}, nil
}
