package matching

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spigell/resume-analyzer/internal/catalog"
)

// JobMatch is a posting scored against one resume. Scores are on a 0-100 scale.
type JobMatch struct {
	*catalog.Posting

	MatchScore      float64  `json:"match_score"`
	SimilarityScore float64  `json:"similarity_score"`
	SkillMatchScore float64  `json:"skill_match_score"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills"`
}

type Matches struct {
	Items []*JobMatch
}

func (m *Matches) Len() int {
	return len(m.Items)
}

func (m *Matches) FindByID(id string) *JobMatch {
	for _, match := range m.Items {
		if match.ID == id {
			return match
		}
	}
	return nil
}

// Exclude drops every match whose field equals one of targets and returns
// the dropped posting ids. Order of the remaining matches is kept.
func (m *Matches) Exclude(field string, targets []string) []string {
	set := make(map[string]struct{}, len(targets))
	for _, t := range targets {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}

	var excluded []string
	kept := m.Items[:0]
	for _, match := range m.Items {
		if _, ok := set[strings.ToLower(match.GetStringField(field))]; ok {
			excluded = append(excluded, match.ID)
			continue
		}
		kept = append(kept, match)
	}
	m.Items = kept

	return excluded
}

// Keep retains only matches accepted by fn and returns the dropped ids.
func (m *Matches) Keep(fn func(*JobMatch) bool) []string {
	var dropped []string
	kept := m.Items[:0]
	for _, match := range m.Items {
		if fn(match) {
			kept = append(kept, match)
			continue
		}
		dropped = append(dropped, match.ID)
	}
	m.Items = kept
	return dropped
}

func (m *Matches) ToExcluded() *catalog.ExcludedPostings {
	excluded := &catalog.ExcludedPostings{}
	for _, match := range m.Items {
		excluded.Items = append(excluded.Items, &catalog.ExcludedPosting{
			ID:         match.ID,
			Title:      match.Title,
			Company:    match.Company,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// ReportByCompany groups the matches by company.
func (m *Matches) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, match := range m.Items {
		report[match.Company] = append(report[match.Company], map[string]string{
			"title":            match.Title,
			"match score":      fmt.Sprintf("%.1f", match.MatchScore),
			"experience level": match.ExperienceLevel,
			"salary":           match.SalaryRange,
			"matching skills":  strings.Join(match.MatchingSkills, ", "),
			"missing skills":   strings.Join(match.MissingSkills, ", "),
		})
	}
	return report
}

func (m *Matches) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "matches_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return "", err
	}
	return file.Name(), nil
}
