package resume

import "fmt"

// UnsupportedFormatError is returned for any format other than pdf or docx.
type UnsupportedFormatError struct {
	Format Format
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format: %q", string(e.Format))
}

// ExtractionError describes a document that could not be opened or decoded.
type ExtractionError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("error reading %s: %v", e.Format.label(), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
