package matching

import (
	"errors"
	"math"
	"regexp"
	"strings"
)

// ErrEmptyVocabulary is returned when neither document has a usable term.
var ErrEmptyVocabulary = errors.New("empty vocabulary; documents contain only stop words")

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Similarity fits a TF-IDF model on exactly the two documents and returns
// the cosine similarity of their vectors.
func Similarity(a, b string) (float64, error) {
	countsA := termCounts(a)
	countsB := termCounts(b)

	if len(countsA) == 0 && len(countsB) == 0 {
		return 0, ErrEmptyVocabulary
	}

	const docs = 2.0
	idf := func(term string) float64 {
		df := 0.0
		if _, ok := countsA[term]; ok {
			df++
		}
		if _, ok := countsB[term]; ok {
			df++
		}
		return math.Log((1+docs)/(1+df)) + 1
	}

	vecA := weigh(countsA, idf)
	vecB := weigh(countsB, idf)

	normA := norm(vecA)
	normB := norm(vecB)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	var dot float64
	for term, w := range vecA {
		dot += w * vecB[term]
	}

	return dot / (normA * normB), nil
}

func termCounts(doc string) map[string]float64 {
	counts := make(map[string]float64)
	for _, token := range tokenPattern.FindAllString(strings.ToLower(doc), -1) {
		if _, stop := englishStopWords[token]; stop {
			continue
		}
		counts[token]++
	}
	return counts
}

func weigh(counts map[string]float64, idf func(string) float64) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	for term, count := range counts {
		vec[term] = count * idf(term)
	}
	return vec
}

func norm(vec map[string]float64) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}
