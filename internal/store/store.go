package store

import (
	"sync"
)

// TemplateSet holds the three operator-supplied SEO templates.
type TemplateSet struct {
	Description     string
	PageTitle       string
	MetaDescription string
}

// Store keeps the template set and the last generated tag list in memory.
// Both live for the process lifetime only; nothing is persisted across
// restarts. The mutex keeps individual reads and writes race-free, but
// cross-request ordering of updates versus reads is not guaranteed.
type Store struct {
	mu        sync.RWMutex
	templates TemplateSet
	tags      []string
}

func New() *Store {
	return &Store{}
}

// SetTemplates replaces all three templates at once, even when some are empty.
func (s *Store) SetTemplates(t TemplateSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates = t
}

func (s *Store) Templates() TemplateSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.templates
}

// SetGeneratedTags replaces the current tag list with a copy of tags.
func (s *Store) SetGeneratedTags(tags []string) {
	cp := make([]string, len(tags))
	copy(cp, tags)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tags = cp
}

func (s *Store) GeneratedTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cp := make([]string, len(s.tags))
	copy(cp, s.tags)
	return cp
}
