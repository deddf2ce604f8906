// Package answers holds the session-scoped raw answer state mutated by the
// presentation layer and read by the rendering engine.
package answers

import (
	"slices"
	"strings"
)

// Raw is the stored answer for one question. Exactly one of the value fields
// is meaningful depending on question type: Option for single choice (the
// empty string means the synthetic none option), Options for multi choice,
// Text plus UserEdited for free text. UserEdited distinguishes "user
// explicitly typed (possibly nothing)" from "never touched, may inherit a
// default".
type Raw struct {
	Option     string
	Options    []string
	Text       string
	UserEdited bool
}

// Store maps question ids to raw answers.
type Store struct {
	values map[string]Raw
}

// NewStore creates an empty answer store.
func NewStore() *Store {
	return &Store{values: make(map[string]Raw)}
}

// Get returns the raw answer for a question. ok is false when the question
// has never been answered or seeded.
func (s *Store) Get(id string) (Raw, bool) {
	r, ok := s.values[id]
	return r, ok
}

// SetOption records a single-choice selection. The empty option id selects
// the none option.
func (s *Store) SetOption(id, optionID string) {
	s.values[id] = Raw{Option: optionID}
}

// SetOptions records a multi-choice selection set, preserving the given order.
func (s *Store) SetOptions(id string, optionIDs []string) {
	s.values[id] = Raw{Options: slices.Clone(optionIDs)}
}

// Toggle checks or unchecks one option of a multi-choice question.
func (s *Store) Toggle(id, optionID string, checked bool) {
	r := s.values[id]
	has := slices.Contains(r.Options, optionID)
	switch {
	case checked && !has:
		r.Options = append(r.Options, optionID)
	case !checked && has:
		r.Options = slices.DeleteFunc(r.Options, func(o string) bool { return o == optionID })
	}
	s.values[id] = r
}

// SetText records free-text input. The value is trimmed and the question is
// marked user-edited even when the trimmed value is empty.
func (s *Store) SetText(id, text string) {
	s.values[id] = Raw{Text: strings.TrimSpace(text), UserEdited: true}
}

// Clear removes the stored answer for a question.
func (s *Store) Clear(id string) {
	delete(s.values, id)
}

// Len returns the number of stored answers.
func (s *Store) Len() int {
	return len(s.values)
}

// IDs returns the ids of all stored answers in unspecified order.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.values))
	for id := range s.values {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns an independent copy of the store.
func (s *Store) Clone() *Store {
	c := NewStore()
	for id, r := range s.values {
		r.Options = slices.Clone(r.Options)
		c.values[id] = r
	}
	return c
}
