package resume

import (
	"regexp"
	"strings"
)

// SummarySection labels the content that precedes the first recognized header.
const SummarySection = "Summary"

var sectionHeaders = []*regexp.Regexp{
	regexp.MustCompile(`^(experience|work experience|employment history)`),
	regexp.MustCompile(`^(education|academic background)`),
	regexp.MustCompile(`^(skills|technical skills|competencies)`),
	regexp.MustCompile(`^(projects|personal projects)`),
	regexp.MustCompile(`^(certifications|certificates)`),
	regexp.MustCompile(`^(achievements|awards)`),
	regexp.MustCompile(`^(summary|objective|about)`),
}

// IsSectionHeader reports whether the line starts with a known section header.
func IsSectionHeader(line string) bool {
	lower := strings.ToLower(strings.TrimSpace(line))
	for _, header := range sectionHeaders {
		if header.MatchString(lower) {
			return true
		}
	}
	return false
}

// SplitSections groups lines under the most recent header line.
// Section labels are the header lines as written.
func SplitSections(lines []string) map[string]string {
	sections := make(map[string]string)

	current := SummarySection
	var content []string

	flush := func() {
		if len(content) > 0 {
			sections[current] = strings.Join(content, " ")
		}
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if IsSectionHeader(line) {
			flush()
			current = line
			content = nil
			continue
		}

		content = append(content, line)
	}
	flush()

	return sections
}
