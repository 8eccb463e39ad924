package resume

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

const msgNoText = "no text extracted from resume"

var whitespacePattern = regexp.MustCompile(`\s+`)

// Parser turns resume documents into Records.
// It keeps no state between calls and is safe for concurrent use.
type Parser struct {
	logger *zap.Logger
}

func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

// Parse extracts the document and structures its text.
// Only an unsupported format is returned as an error. Extraction failures
// are reported through Record.ParseError so callers always get a record.
func (p *Parser) Parse(path string, format Format) (*Record, error) {
	text, err := ExtractText(path, format)
	if err != nil {
		var unsupported *UnsupportedFormatError
		if errors.As(err, &unsupported) {
			return nil, err
		}

		var extraction *ExtractionError
		if !errors.As(err, &extraction) {
			return nil, fmt.Errorf("extract text: %w", err)
		}

		p.logger.Warn("resume extraction failed",
			zap.String("path", path),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return failedRecord(fmt.Sprintf("error processing resume: %v", err)), nil
	}

	p.logger.Debug("resume text extracted",
		zap.String("path", path),
		zap.String("format", string(format)),
		zap.Int("length", len(text)),
	)

	return p.ParseText(text), nil
}

// ParseText structures already extracted text.
func (p *Parser) ParseText(text string) *Record {
	normalized := Normalize(text)
	if normalized == "" {
		p.logger.Warn(msgNoText)
		return failedRecord(msgNoText)
	}

	lines := Lines(text)

	record := &Record{
		RawText:      normalized,
		PersonalInfo: ExtractPersonalInfo(normalized),
		Skills:       ExtractSkills(normalized),
		Experience:   ExtractExperience(lines),
		Education:    ExtractEducation(lines),
		Sections:     SplitSections(lines),
		Stats:        ComputeStats(normalized),
		Entities:     ExtractEntities(normalized),
	}

	p.logger.Debug("resume structured",
		zap.Int("skills", record.Skills.Count()),
		zap.Int("experience_entries", len(record.Experience)),
		zap.Int("education_entries", len(record.Education)),
		zap.Int("sections", len(record.Sections)),
		zap.Int("words", record.Stats.WordCount),
	)

	return record
}

// Normalize collapses every whitespace run, newlines included, into one space.
func Normalize(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}

// Lines splits text on line breaks, trims every line and drops blank ones.
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
