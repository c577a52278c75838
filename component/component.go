// Package component holds the named glyph-description strings a stroke
// description can reference by name, and loads them from the pipe-delimited
// dictionary file format the wider ecosystem distributes them in.
package component

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Store maps component names to their raw, unparsed glyph data.
type Store struct {
	data map[string]string
}

// New returns an empty Store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Set adds or overwrites the glyph data for name, reporting whether an
// entry with that name already existed.
func (s *Store) Set(name, data string) bool {
	_, existed := s.data[name]
	s.data[name] = data
	return existed
}

// Search returns the glyph data registered for name, and whether it was
// found.
func (s *Store) Search(name string) (string, bool) {
	data, ok := s.data[name]
	return data, ok
}

// Len reports the number of distinct component names held.
func (s *Store) Len() int {
	return len(s.data)
}

// LoadDictionary reads a pipe-delimited dictionary file (one component per
// line, formatted "name|related|glyph_data") into a new Store. The first
// two lines are a header and are skipped. A literal "\@" in a name decodes
// to "@". A name that already appears later in the file overwrites the
// earlier entry.
func LoadDictionary(r io.Reader) (*Store, error) {
	store := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum <= 2 {
			continue
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "|", 3)
		if len(fields) < 3 {
			continue
		}
		name := strings.ReplaceAll(fields[0], `\@`, "@")
		store.Set(name, fields[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("component: reading dictionary: %w", err)
	}
	return store, nil
}
