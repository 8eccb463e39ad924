package resume

import "strings"

type skillCategory struct {
	name     string
	keywords []string
}

var skillKeywords = []skillCategory{
	{CategoryProgramming, []string{"python", "java", "javascript", "c++", "c#", "ruby", "go", "rust", "swift", "kotlin"}},
	{CategoryWeb, []string{"html", "css", "react", "angular", "vue", "django", "flask", "node.js", "express"}},
	{CategoryDataScience, []string{"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch", "keras", "ml", "ai"}},
	{CategoryDatabases, []string{"sql", "mysql", "postgresql", "mongodb", "redis", "oracle"}},
	{CategoryCloud, []string{"aws", "azure", "gcp", "docker", "kubernetes", "terraform"}},
	{CategoryTools, []string{"git", "jenkins", "jira", "confluence", "slack"}},
}

// ExtractSkills marks every keyword that occurs anywhere in the text, ignoring case.
// Every category is present in the result, even when nothing was found.
func ExtractSkills(text string) Skills {
	lower := strings.ToLower(text)
	skills := EmptySkills()

	for _, category := range skillKeywords {
		for _, keyword := range category.keywords {
			if strings.Contains(lower, keyword) {
				skills[category.name] = append(skills[category.name], keyword)
			}
		}
	}

	return skills
}
