package matching

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spigell/resume-analyzer/internal/catalog"
	"github.com/spigell/resume-analyzer/internal/resume"
	"go.uber.org/zap"
)

const (
	similarityWeight = 0.6
	skillWeight      = 0.4

	// DefaultSimilarity replaces a similarity that could not be computed.
	DefaultSimilarity = 0.5
	DefaultTopN       = 5
)

// Matcher scores resume records against a fixed posting catalog.
// The catalog is never modified after New, so a Matcher may be shared.
type Matcher struct {
	postings []*catalog.Posting
	logger   *zap.Logger
}

func New(postings []*catalog.Posting, logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	copied := make([]*catalog.Posting, 0, len(postings))
	for _, p := range postings {
		if p == nil {
			continue
		}
		clone := *p
		clone.RequiredSkills = append([]string(nil), p.RequiredSkills...)
		clone.PreferredSkills = append([]string(nil), p.PreferredSkills...)
		copied = append(copied, &clone)
	}

	return &Matcher{postings: copied, logger: logger}
}

// Postings returns the catalog the matcher was built with.
func (m *Matcher) Postings() []*catalog.Posting {
	return m.postings
}

// Match scores the record against every posting and returns the best topN,
// highest score first. Equal scores keep catalog order. topN <= 0 means all.
func (m *Matcher) Match(record *resume.Record, topN int) *Matches {
	if record == nil {
		record = &resume.Record{Skills: resume.EmptySkills()}
	}

	document := comparisonDocument(record)
	resumeSkills := lowerSet(record.Skills.All())

	items := make([]*JobMatch, 0, len(m.postings))
	for _, posting := range m.postings {
		similarity, err := Similarity(document, posting.Description)
		if err != nil {
			m.logger.Debug("similarity computation failed, using default",
				zap.String("posting_id", posting.ID),
				zap.Float64("default", DefaultSimilarity),
				zap.Error(err),
			)
			similarity = DefaultSimilarity
		}

		matching, missing := compareSkills(resumeSkills, posting.RequiredSkills)
		skill := 0.0
		if required := len(matching) + len(missing); required > 0 {
			skill = float64(len(matching)) / float64(required)
		}

		items = append(items, &JobMatch{
			Posting:         posting,
			MatchScore:      round1(100 * (similarityWeight*similarity + skillWeight*skill)),
			SimilarityScore: round1(100 * similarity),
			SkillMatchScore: round1(100 * skill),
			MatchingSkills:  matching,
			MissingSkills:   missing,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].MatchScore > items[j].MatchScore
	})

	if topN > 0 && topN < len(items) {
		items = items[:topN]
	}

	m.logger.Debug("resume matched against catalog",
		zap.Int("postings", len(m.postings)),
		zap.Int("returned", len(items)),
	)

	return &Matches{Items: items}
}

// comparisonDocument renders experience entries with their field labels, so
// the labels take part in the similarity like any other term.
func comparisonDocument(record *resume.Record) string {
	experience := make([]string, 0, len(record.Experience))
	for _, e := range record.Experience {
		experience = append(experience, fmt.Sprintf("duration: %s position: %s company: %s", e.Duration, e.PositionLine, e.CompanyGuess))
	}

	return strings.Join([]string{
		record.RawText,
		strings.Join(experience, " "),
		strings.Join(record.Skills.All(), " "),
	}, " ")
}

// compareSkills splits the lower-cased required skills into those the resume
// has and those it lacks. Both results are sorted.
func compareSkills(resumeSkills map[string]struct{}, required []string) ([]string, []string) {
	matching := make([]string, 0)
	missing := make([]string, 0)

	for skill := range lowerSet(required) {
		if _, ok := resumeSkills[skill]; ok {
			matching = append(matching, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	sort.Strings(matching)
	sort.Strings(missing)
	return matching, missing
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
