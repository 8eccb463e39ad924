package resume

// Skill categories in the order they are reported.
const (
	CategoryProgramming = "programming"
	CategoryWeb         = "web"
	CategoryDataScience = "data_science"
	CategoryDatabases   = "databases"
	CategoryCloud       = "cloud"
	CategoryTools       = "tools"
)

// Record is the structured result of parsing a single resume.
// It must be treated as read-only once returned by the Parser.
type Record struct {
	// RawText is the whole document with every whitespace run collapsed to a single space.
	RawText      string            `json:"raw_text"`
	PersonalInfo PersonalInfo      `json:"personal_info"`
	Skills       Skills            `json:"skills"`
	Experience   []Experience      `json:"experience"`
	Education    []Education       `json:"education"`
	Sections     map[string]string `json:"sections"`
	Stats        Stats             `json:"stats"`
	Entities     Entities          `json:"entities"`
	// ParseError is set when no text could be extracted. All other fields are empty then.
	ParseError string `json:"parse_error,omitempty"`
}

// PersonalInfo keeps the first match of every contact pattern. Empty means not found.
type PersonalInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin_url,omitempty"`
}

// Skills maps every skill category to the keywords found for it.
type Skills map[string][]string

// Experience is a line that carries a year range.
type Experience struct {
	Duration     string `json:"duration"`
	PositionLine string `json:"position_line"`
	CompanyGuess string `json:"company_guess"`
}

// Education is a line that mentions an education keyword.
type Education struct {
	InstitutionLine string `json:"institution_line"`
	DegreeGuess     string `json:"degree_guess"`
}

type Stats struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	UniqueWordCount   int     `json:"unique_word_count"`
}

// Categories returns the fixed skill categories in reporting order.
func Categories() []string {
	categories := make([]string, 0, len(skillKeywords))
	for _, c := range skillKeywords {
		categories = append(categories, c.name)
	}
	return categories
}

// EmptySkills returns a Skills value with every category mapped to an empty list.
func EmptySkills() Skills {
	skills := make(Skills, len(skillKeywords))
	for _, c := range skillKeywords {
		skills[c.name] = []string{}
	}
	return skills
}

// All flattens the skills in category order.
func (s Skills) All() []string {
	all := make([]string, 0, s.Count())
	for _, c := range skillKeywords {
		all = append(all, s[c.name]...)
	}
	return all
}

// Count returns the number of skills over all categories.
func (s Skills) Count() int {
	total := 0
	for _, found := range s {
		total += len(found)
	}
	return total
}

// Failed reports whether the record was produced from a failed extraction.
func (r *Record) Failed() bool {
	return r.ParseError != ""
}

func failedRecord(message string) *Record {
	return &Record{
		Skills:     EmptySkills(),
		Experience: []Experience{},
		Education:  []Education{},
		Sections:   map[string]string{},
		Entities:   emptyEntities(),
		ParseError: message,
	}
}
