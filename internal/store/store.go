package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/ilinovom/company-info-bot/internal/model"
)

// Store abstracts persistence of the bot document. Callers always get a
// fresh snapshot from Load; nothing shares in-memory state.
type Store interface {
	Load() (*model.Document, error)
	Save(doc *model.Document) error
}

// FileStore keeps the document in a single JSON file.
//
// Save is atomic: the document is written to a temp sibling and renamed into
// place, so a concurrent Load sees either the old or the new file, never a
// torn one. The mutex only serialises file access within this process. The
// subscribe path (Load, append, Save) is not transactional: two simultaneous
// /start calls can lose one write. Known limitation, acceptable for a
// handful of human users.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing file yields an empty
// document, not an error.
func (s *FileStore) Load() (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &model.Document{}, nil
		}
		return nil, err
	}
	var doc model.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}
	return &doc, nil
}

// Save writes the document back to disk atomically.
func (s *FileStore) Save(doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// Subscribe adds chatID to the document's subscriber list unless it is
// already present. It reports whether the document changed.
func Subscribe(doc *model.Document, chatID int64) bool {
	for _, id := range doc.Subscribers {
		if id == chatID {
			return false
		}
	}
	doc.Subscribers = append(doc.Subscribers, chatID)
	return true
}
