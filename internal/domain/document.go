package domain

import (
	"fmt"
	"time"
)

type DocumentCategory string

const (
	DocumentCategoryForm     DocumentCategory = "Form"
	DocumentCategoryReport   DocumentCategory = "Report"
	DocumentCategoryLetter   DocumentCategory = "Letter"
	DocumentCategoryImported DocumentCategory = "Imported"
)

func (c DocumentCategory) Valid() bool {
	switch c {
	case DocumentCategoryForm, DocumentCategoryReport, DocumentCategoryLetter, DocumentCategoryImported:
		return true
	}
	return false
}

// Markup is rich-text content passed through untouched.
type Markup string

const BlankDocumentContent Markup = "<h1>New Document</h1><p>Start typing here...</p>"

type DocumentTemplate struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Category     DocumentCategory `json:"category"`
	LastModified time.Time        `json:"lastModified"`
	Content      Markup           `json:"content"`
}

// NewDocumentID returns a DOC-<unix millis> id.
func NewDocumentID(now time.Time) string {
	return fmt.Sprintf("DOC-%d", now.UnixMilli())
}

// NewBlankDocument returns an untitled letter with starter content.
func NewBlankDocument(now time.Time) *DocumentTemplate {
	return &DocumentTemplate{
		ID:           NewDocumentID(now),
		Title:        "Untitled Document",
		Category:     DocumentCategoryLetter,
		LastModified: now.UTC(),
		Content:      BlankDocumentContent,
	}
}
