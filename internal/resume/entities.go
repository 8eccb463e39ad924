package resume

import (
	"regexp"
	"strings"
)

var capitalizedWordPattern = regexp.MustCompile(`\b[A-Z][a-z]+\b`)

var entityStopWords = wordSet(
	"i", "me", "my", "myself", "we", "our", "ours", "ourselves", "you", "you're",
	"you've", "you'll", "you'd", "your", "yours", "yourself", "yourselves", "he", "him", "his",
	"himself", "she", "she's", "her", "hers", "herself", "it", "it's", "its", "itself",
	"they", "them", "their", "theirs", "themselves", "what", "which", "who", "whom", "this",
	"that", "that'll", "these", "those", "am", "is", "are", "was", "were", "be",
	"been", "being", "have", "has", "had", "having", "do", "does", "did", "doing",
	"a", "an", "the", "and", "but", "if", "or", "because", "as", "until",
	"while", "of", "at", "by", "for", "with", "about", "against", "between", "into",
	"through", "during", "before", "after", "above", "below", "to", "from", "up", "down",
	"in", "out", "on", "off", "over", "under", "again", "further", "then", "once",
)

// Entities holds capitalized words guessed to be names.
// Only Persons is filled; the other lists are kept empty for a stable shape.
type Entities struct {
	Organizations []string `json:"organizations"`
	Persons       []string `json:"persons"`
	Locations     []string `json:"locations"`
}

func wordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func emptyEntities() Entities {
	return Entities{
		Organizations: []string{},
		Persons:       []string{},
		Locations:     []string{},
	}
}

// ExtractEntities collects every title-case word that is not a common
// English function word, in document order and with repeats.
func ExtractEntities(text string) Entities {
	entities := emptyEntities()

	for _, word := range capitalizedWordPattern.FindAllString(text, -1) {
		if _, stop := entityStopWords[strings.ToLower(word)]; stop {
			continue
		}
		entities.Persons = append(entities.Persons, word)
	}

	return entities
}
