package resume

import (
	"regexp"
	"strings"
)

var (
	wordPattern     = regexp.MustCompile(`[\p{L}\p{N}_]+`)
	sentencePattern = regexp.MustCompile(`[.!?]+`)
)

// ComputeStats counts words and sentences of the normalized text.
func ComputeStats(text string) Stats {
	words := wordPattern.FindAllString(text, -1)

	sentences := 0
	for _, fragment := range sentencePattern.Split(text, -1) {
		if strings.TrimSpace(fragment) != "" {
			sentences++
		}
	}

	unique := make(map[string]struct{}, len(words))
	for _, word := range words {
		unique[word] = struct{}{}
	}

	stats := Stats{
		WordCount:       len(words),
		SentenceCount:   sentences,
		UniqueWordCount: len(unique),
	}
	if sentences > 0 {
		stats.AvgSentenceLength = float64(len(words)) / float64(sentences)
	}

	return stats
}
