package resume

import (
	"path/filepath"
	"strings"
)

// Format is the declared type of a resume document.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// ParseFormat normalizes a user supplied format tag. A leading dot is accepted.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "."))
	if !f.Supported() {
		return f, &UnsupportedFormatError{Format: f}
	}
	return f, nil
}

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

func (f Format) Supported() bool {
	return f == FormatPDF || f == FormatDOCX
}

func (f Format) label() string {
	if f.Supported() {
		return strings.ToUpper(string(f))
	}
	return string(f)
}
