// Package docsource loads proposal-request documents and exposes their text
// to the analysis pipeline, optionally split by page.
package docsource

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Page is one page of extracted text, in document order.
type Page struct {
	Number int
	Text   string
}

// Document is a loaded proposal request. The pipeline only reads the
// extracted text; byte-level extraction concerns stay inside this package.
type Document struct {
	ID    string
	Name  string
	text  string
	pages []Page
}

// New creates a document from already-extracted text.
func New(name, text string, pages []Page) *Document {
	return &Document{
		ID:    uuid.NewString(),
		Name:  name,
		text:  text,
		pages: pages,
	}
}

// Text returns the full extracted text.
func (d *Document) Text() string { return d.text }

// Pages returns per-page text in order, or nil when pagination is unknown.
func (d *Document) Pages() []Page { return d.pages }

// Load reads a document from disk, choosing the loader by file extension.
// PDF files yield per-page text; everything else is treated as plain text.
func Load(path string) (*Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return loadPDF(path)
	default:
		return loadText(path)
	}
}

// loadText reads a plain-text document.
func loadText(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return New(filepath.Base(path), string(data), nil), nil
}
