package outline

import (
	"encoding/json"
	"strings"
)

// DefaultTitle replaces an empty title in serialized output.
const DefaultTitle = "Untitled Document"

// NewDocument builds the final output document from a title and raw
// entries, running the normalizer over the entries.
func NewDocument(title string, entries []Entry) Document {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	normalized := Normalize(entries)
	if normalized == nil {
		normalized = []Entry{}
	}
	return Document{Title: title, Outline: normalized}
}

// Encode serializes a document as indented JSON.
func Encode(doc Document) ([]byte, error) {
	if doc.Outline == nil {
		doc.Outline = []Entry{}
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ValidOutput reports whether serialized output satisfies the outline
// contract: a string title and a well-formed entry list with known
// levels, non-empty text and pages ≥ 1.
func ValidOutput(data []byte) bool {
	var doc struct {
		Title   *string `json:"title"`
		Outline *[]struct {
			Level *string `json:"level"`
			Text  *string `json:"text"`
			Page  *int    `json:"page"`
		} `json:"outline"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	if doc.Title == nil || doc.Outline == nil {
		return false
	}
	for _, e := range *doc.Outline {
		if e.Level == nil || e.Text == nil || e.Page == nil {
			return false
		}
		if !validLevel(*e.Level) {
			return false
		}
		if strings.TrimSpace(*e.Text) == "" {
			return false
		}
		if *e.Page < 1 {
			return false
		}
	}
	return true
}
