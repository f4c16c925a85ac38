package outstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/outliner-go/outliner/internal/outline"
)

// Store persists one outline JSON file per document under a base
// directory. Writes are atomic (temp file + rename) so readers never
// observe a partial outline.
type Store struct {
	dir string
}

// NewStore creates the base directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("output directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the base directory.
func (s *Store) Dir() string {
	return s.dir
}

// Put writes the outline document for docID and returns the file path.
func (s *Store) Put(docID string, doc outline.Document) (string, error) {
	if err := validDocID(docID); err != nil {
		return "", err
	}
	data, err := outline.Encode(doc)
	if err != nil {
		return "", fmt.Errorf("encode outline: %w", err)
	}

	path := s.path(docID)
	tmp, err := os.CreateTemp(s.dir, "."+docID+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("write outline: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("replace outline: %w", err)
	}
	return path, nil
}

// Get loads the outline document for docID. Returns nil, nil when the
// document does not exist.
func (s *Store) Get(docID string) (*outline.Document, error) {
	if err := validDocID(docID); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(docID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read outline: %w", err)
	}
	var doc outline.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode outline %s: %w", docID, err)
	}
	return &doc, nil
}

// Exists reports whether an outline is stored for docID.
func (s *Store) Exists(docID string) bool {
	if validDocID(docID) != nil {
		return false
	}
	_, err := os.Stat(s.path(docID))
	return err == nil
}

// Delete removes the stored outline for docID. Deleting a missing
// document is not an error.
func (s *Store) Delete(docID string) error {
	if err := validDocID(docID); err != nil {
		return err
	}
	err := os.Remove(s.path(docID))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// StoredDoc describes one stored outline.
type StoredDoc struct {
	DocID    string    `json:"doc_id"`
	Title    string    `json:"title"`
	Headings int       `json:"headings"`
	Modified time.Time `json:"modified"`
}

// List returns all stored outlines, newest first.
func (s *Store) List() ([]StoredDoc, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read output dir: %w", err)
	}

	var docs []StoredDoc
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || strings.HasPrefix(name, ".") {
			continue
		}
		docID := strings.TrimSuffix(name, ".json")
		doc, err := s.Get(docID)
		if err != nil || doc == nil {
			continue
		}
		info, err := entry.Info()
		var mod time.Time
		if err == nil {
			mod = info.ModTime()
		}
		docs = append(docs, StoredDoc{
			DocID:    docID,
			Title:    doc.Title,
			Headings: len(doc.Outline),
			Modified: mod,
		})
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].Modified.After(docs[j].Modified) })
	return docs, nil
}

func (s *Store) path(docID string) string {
	return filepath.Join(s.dir, docID+".json")
}

// validDocID rejects IDs that could escape the base directory.
func validDocID(docID string) error {
	if docID == "" {
		return errors.New("doc id is required")
	}
	if strings.ContainsAny(docID, `/\`) || strings.Contains(docID, "..") {
		return fmt.Errorf("invalid doc id: %q", docID)
	}
	return nil
}
