package resume

import "strings"

const unknownDegree = "Unknown"

var (
	educationKeywords = []string{"university", "college", "institute", "bachelor", "master", "phd", "degree"}
	degreeKeywords    = []string{"bachelor", "master", "phd", "associate", "diploma", "certificate"}
)

// ExtractEducation returns one entry per line that mentions an education keyword.
func ExtractEducation(lines []string) []Education {
	entries := make([]Education, 0)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !containsAny(strings.ToLower(line), educationKeywords) {
			continue
		}

		entries = append(entries, Education{
			InstitutionLine: line,
			DegreeGuess:     guessDegree(line),
		})
	}

	return entries
}

func guessDegree(line string) string {
	lower := strings.ToLower(line)
	for _, degree := range degreeKeywords {
		if strings.Contains(lower, degree) {
			return strings.ToUpper(degree[:1]) + degree[1:]
		}
	}
	return unknownDegree
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
