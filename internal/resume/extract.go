package resume

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const wordprocessingNS = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// ExtractText returns the plain text of the document at path.
// The file is only read.
func ExtractText(path string, format Format) (string, error) {
	switch format {
	case FormatPDF:
		return extractPDF(path)
	case FormatDOCX:
		return extractDOCX(path)
	default:
		return "", &UnsupportedFormatError{Format: format}
	}
}

func extractPDF(path string) (text string, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Path: path, Err: err}
	}
	defer file.Close()

	// The pdf package panics on some malformed cross reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Format: FormatPDF, Path: path, Err: fmt.Errorf("malformed document: %v", r)}
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Path: path, Err: err}
	}

	reader, err := pdf.NewReader(file, stat.Size())
	if err != nil {
		return "", &ExtractionError{Format: FormatPDF, Path: path, Err: err}
	}

	pages := make([]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, pageText(reader.Page(i)))
	}

	return strings.TrimSpace(strings.Join(pages, "\n")), nil
}

// pageText returns an empty string for pages without extractable text.
func pageText(page pdf.Page) string {
	if page.V.IsNull() {
		return ""
	}

	text, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(text)
}

func extractDOCX(path string) (string, error) {
	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Path: path, Err: err}
	}
	defer doc.Close()

	paragraphs, err := docxParagraphs(strings.NewReader(doc.Editable().GetContent()))
	if err != nil {
		return "", &ExtractionError{Format: FormatDOCX, Path: path, Err: err}
	}

	var builder strings.Builder
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		builder.WriteString(p)
		builder.WriteString("\n")
	}

	return strings.TrimSpace(builder.String()), nil
}

// docxParagraphs walks word/document.xml and returns the text of every
// top level w:p element in document order.
func docxParagraphs(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)

	var (
		paragraphs []string
		current    strings.Builder
		depth      int
		inText     bool
	)

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if !isWordElement(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "p":
				if depth == 0 {
					current.Reset()
				}
				depth++
			case "t":
				inText = depth > 0
			case "tab":
				if depth > 0 {
					current.WriteString("\t")
				}
			case "br", "cr":
				if depth > 0 {
					current.WriteString("\n")
				}
			}
		case xml.EndElement:
			if !isWordElement(t.Name) {
				continue
			}
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if depth == 0 {
					continue
				}
				depth--
				if depth == 0 {
					paragraphs = append(paragraphs, current.String())
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		}
	}

	return paragraphs, nil
}

func isWordElement(name xml.Name) bool {
	return name.Space == wordprocessingNS || name.Space == "w"
}
