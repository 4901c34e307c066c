package docsource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// loadPDF extracts plain text from a PDF file, page by page, so findings can
// be attributed back to source pages.
func loadPDF(path string) (*Document, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() { _ = f.Close() }()

	var (
		pages []Page
		full  strings.Builder
	)

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A single unreadable page should not sink the document.
			continue
		}

		pages = append(pages, Page{Number: i, Text: text})
		full.WriteString(text)
	}

	if full.Len() == 0 {
		return nil, fmt.Errorf("no extractable text in PDF %s", path)
	}

	return New(filepath.Base(path), full.String(), pages), nil
}
