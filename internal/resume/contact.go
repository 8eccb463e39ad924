package resume

import "regexp"

var (
	emailPattern    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern    = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedInPattern = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9-]+`)
)

// ExtractPersonalInfo keeps the first match of each contact pattern.
// Matching is purely syntactic.
func ExtractPersonalInfo(text string) PersonalInfo {
	return PersonalInfo{
		Email:    emailPattern.FindString(text),
		Phone:    phonePattern.FindString(text),
		LinkedIn: linkedInPattern.FindString(text),
	}
}
