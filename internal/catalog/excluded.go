package catalog

import (
	"encoding/json"
	"os"
	"time"
)

type ExcludedPostings struct {
	Items []*ExcludedPosting
}

type ExcludedPosting struct {
	ID         string
	Title      string
	Company    string
	ExcludedAt time.Time
}

// GetExcludedFromFile reads the exclude file. An empty file is an empty list.
func GetExcludedFromFile(path string) (*ExcludedPostings, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedPostings{}, nil
	}

	var excluded ExcludedPostings
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

func (e *ExcludedPostings) Append(s *ExcludedPostings) {
	e.Items = append(e.Items, s.Items...)
}

func (e *ExcludedPostings) IDs() []string {
	ids := make([]string, 0, len(e.Items))
	for _, p := range e.Items {
		ids = append(ids, p.ID)
	}
	return ids
}

func (e *ExcludedPostings) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
