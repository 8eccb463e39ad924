package resume

import (
	"regexp"
	"strings"
)

var (
	yearRangePattern = regexp.MustCompile(`(?i)\b\d{4}\s*[-–]\s*(?:\d{4}|present|current)\b`)
	roleTitlePattern = regexp.MustCompile(`(?i)\b(?:senior|junior|lead|manager|director|engineer|developer|analyst)\b`)
)

// ExtractExperience returns one entry per line that contains a year range.
func ExtractExperience(lines []string) []Experience {
	entries := make([]Experience, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		duration := yearRangePattern.FindString(line)
		if duration == "" {
			continue
		}

		entries = append(entries, Experience{
			Duration:     duration,
			PositionLine: line,
			CompanyGuess: guessCompany(line),
		})
	}

	return entries
}

func guessCompany(line string) string {
	cleaned := yearRangePattern.ReplaceAllString(line, "")
	cleaned = roleTitlePattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}
