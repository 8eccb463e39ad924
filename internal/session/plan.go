package session

import (
	"fmt"
	"io"
	"strings"
)

// ATSTips are general resume hints shown with every improvement plan.
var ATSTips = []string{
	"Use standard section headings (Experience, Education, Skills)",
	"Include relevant keywords from job descriptions",
	"Use bullet points for achievements",
	"Quantify results with numbers and percentages",
	"Avoid graphics and complex formatting",
	"Use common fonts (Arial, Calibri, Times New Roman)",
	"Save as PDF format",
	"Include contact information clearly",
}

// WriteImprovementPlan prints skill gaps and suggestions from the assessment
// followed by the fixed ATS tips.
func (a *Analysis) WriteImprovementPlan(w io.Writer) error {
	var b strings.Builder

	b.WriteString("Identified skill gaps:\n")
	if a.Assessment == nil || len(a.Assessment.SkillGaps) == 0 {
		b.WriteString("  No specific skill gaps identified.\n")
	} else {
		for _, gap := range a.Assessment.SkillGaps {
			fmt.Fprintf(&b, "  - %s\n", gap)
		}
	}

	b.WriteString("Actionable suggestions:\n")
	if a.Assessment == nil || len(a.Assessment.ImprovementSuggestions) == 0 {
		b.WriteString("  Enable AI analysis for personalized suggestions.\n")
	} else {
		for i, s := range a.Assessment.ImprovementSuggestions {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
	}

	b.WriteString("ATS optimization tips:\n")
	for _, tip := range ATSTips {
		fmt.Fprintf(&b, "  - %s\n", tip)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
