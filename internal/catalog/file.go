package catalog

import (
	"fmt"

	"github.com/spf13/viper"
)

const postingsKey = "postings"

// LoadFile reads a catalog from any file format viper understands.
// The file must hold a top level `postings` list.
func LoadFile(path string) ([]*Posting, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read catalog file %s: %w", path, err)
	}

	var postings []*Posting
	if err := v.UnmarshalKey(postingsKey, &postings); err != nil {
		return nil, fmt.Errorf("decode catalog file %s: %w", path, err)
	}

	if err := Validate(postings); err != nil {
		return nil, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}

	return postings, nil
}

// Load returns the file catalog when path is set and the built-in one otherwise.
func Load(path string) ([]*Posting, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
