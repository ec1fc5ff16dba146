package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Store is the single source of truth for all records, backed by one JSON
// document on disk. All reads and writes go through View/Update so that
// read-modify-write cycles never interleave: Update holds the write lock for
// the whole mutate-and-flush sequence.
type Store struct {
	path string

	mu  sync.RWMutex
	doc *Document
}

// Open reads the document at path. A missing file yields a fresh document with
// every collection present and empty; a file that exists but cannot be parsed
// is an error, so hand-edits that corrupt the database are not silently thrown
// away.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.doc = NewDocument()
	case err != nil:
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	default:
		var doc Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("store: parse %s: %w", path, err)
		}
		s.doc = &doc
	}

	s.doc.normalize()
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string { return s.path }

// View runs fn with read access to the document. fn must not mutate it.
func (s *Store) View(fn func(doc *Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Update runs fn with exclusive access to the document and flushes the result
// to disk before releasing the lock. If fn returns an error nothing is
// written.
func (s *Store) Update(fn func(doc *Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	return s.flushLocked()
}

// flushLocked writes the full document atomically: serialize to a temp file in
// the same directory, fsync, then rename over the real path. A concurrent
// reader of the file never sees a partial write.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp := filepath.Join(dir, "."+filepath.Base(s.path)+".tmp-"+uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("store: create temp: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("store: write temp: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("store: sync temp: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: close temp: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}

// normalize makes sure every collection is a non-nil slice and that the id
// counter is ahead of every existing record, so ids stay unique even after the
// file has been edited by hand.
func (d *Document) normalize() {
	for _, name := range CollectionNames {
		if *d.collection(name) == nil {
			*d.collection(name) = []Record{}
		}
	}

	if d.LastID == 0 {
		d.LastID = time.Now().UnixMilli()
	}
	for _, name := range CollectionNames {
		for _, rec := range *d.collection(name) {
			if id := rec.ID(); id > d.LastID {
				d.LastID = id
			}
		}
	}
}
