package session

import (
	"fmt"
	"io"
	"strings"

	"github.com/spigell/resume-analyzer/internal/resume"
)

// WriteSummary prints a human readable overview of the analysis.
func (a *Analysis) WriteSummary(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysis %s (%s)\n", a.ID, a.File)

	if a.Record != nil {
		if a.Record.Failed() {
			fmt.Fprintf(&b, "Parse error: %s\n", a.Record.ParseError)
		}

		info := a.Record.PersonalInfo
		fmt.Fprintf(&b, "Contact: email=%s phone=%s linkedin=%s\n", orDash(info.Email), orDash(info.Phone), orDash(info.LinkedIn))

		stats := a.Record.Stats
		fmt.Fprintf(&b, "Words: %d, sentences: %d, avg sentence length: %.1f, unique words: %d\n",
			stats.WordCount, stats.SentenceCount, stats.AvgSentenceLength, stats.UniqueWordCount)

		b.WriteString("Skills:\n")
		for _, category := range resume.Categories() {
			fmt.Fprintf(&b, "  %s: %s\n", category, orDash(strings.Join(a.Record.Skills[category], ", ")))
		}

		fmt.Fprintf(&b, "Experience entries: %d, education entries: %d, sections: %d\n",
			len(a.Record.Experience), len(a.Record.Education), len(a.Record.Sections))
	}

	if a.Matches != nil {
		b.WriteString("Job matches:\n")
		for i, match := range a.Matches.Items {
			fmt.Fprintf(&b, "  %d. %s at %s: %.1f%% (similarity %.1f%%, skills %.1f%%)\n",
				i+1, match.Title, match.Company, match.MatchScore, match.SimilarityScore, match.SkillMatchScore)
			if len(match.MissingSkills) > 0 {
				fmt.Fprintf(&b, "     missing: %s\n", strings.Join(match.MissingSkills, ", "))
			}
		}
	}

	if a.Assessment != nil {
		fmt.Fprintf(&b, "Assessment (%s): overall %d/100, ATS %d/100\n",
			a.Assessment.Source, a.Assessment.OverallScore, a.Assessment.ATSOptimizationScore)
		for _, s := range a.Assessment.ImprovementSuggestions {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
