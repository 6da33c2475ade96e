// Package skills implements the in-memory skill list editor. Edits accumulate
// locally and are persisted in bulk: the API replaces the whole list in one
// call, so the editor tracks a baseline to know when there is anything to save.
package skills

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/jobmatch-cli/internal/api"
)

// DuplicateError is returned when an added skill differs from an existing one
// only by letter case.
type DuplicateError struct {
	Skill string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("skill %q is already in the list", e.Skill)
}

// Editor holds the working skill list and the last-persisted baseline.
type Editor struct {
	client   *api.Client
	working  []string
	baseline []string
}

// NewEditor seeds an editor from the identity's current skills.
func NewEditor(client *api.Client, current []string) *Editor {
	e := &Editor{client: client}
	e.working = append([]string(nil), current...)
	e.baseline = append([]string(nil), current...)
	return e
}

// Skills returns the working list.
func (e *Editor) Skills() []string {
	return append([]string(nil), e.working...)
}

// Add appends a trimmed skill. Blank input is ignored; a case-insensitive
// duplicate is rejected with a *DuplicateError.
func (e *Editor) Add(skill string) error {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil
	}
	for _, existing := range e.working {
		if strings.EqualFold(existing, skill) {
			return &DuplicateError{Skill: skill}
		}
	}
	e.working = append(e.working, skill)
	return nil
}

// Remove deletes the skill at index. Out-of-range indices are a no-op.
func (e *Editor) Remove(index int) {
	if index < 0 || index >= len(e.working) {
		return
	}
	e.working = append(e.working[:index], e.working[index+1:]...)
}

// RemoveByName deletes the first case-insensitive match and reports whether
// anything was removed.
func (e *Editor) RemoveByName(skill string) bool {
	for i, existing := range e.working {
		if strings.EqualFold(existing, skill) {
			e.Remove(i)
			return true
		}
	}
	return false
}

// MergeExtracted unions extraction results into the working list, preserving
// order and dropping case-insensitive duplicates. Returns how many skills
// were actually added.
func (e *Editor) MergeExtracted(extracted []string) int {
	added := 0
	for _, skill := range extracted {
		if err := e.Add(skill); err == nil && strings.TrimSpace(skill) != "" {
			added++
		}
	}
	return added
}

// Dirty reports whether the working list differs from the last-persisted
// list. Comparison is by full content and order, not reference: save stays
// disabled for a list that was edited back to its baseline.
func (e *Editor) Dirty() bool {
	if len(e.working) != len(e.baseline) {
		return true
	}
	for i := range e.working {
		if e.working[i] != e.baseline[i] {
			return true
		}
	}
	return false
}

// Save persists the working list in one replace call and re-baselines on
// success. Saving a clean list is rejected before any network call.
func (e *Editor) Save(ctx context.Context) error {
	if !e.Dirty() {
		return fmt.Errorf("no changes to save")
	}
	if err := e.client.ReplaceSkills(ctx, e.working); err != nil {
		return err
	}
	e.baseline = append([]string(nil), e.working...)
	return nil
}

// minExtractLength guards against extraction requests that cannot
// meaningfully contain skills.
const minExtractLength = 10

// ExtractFromText asks the server to pull a skill list out of free text and
// merges the result into the working list.
func (e *Editor) ExtractFromText(ctx context.Context, text string) (int, error) {
	if len(strings.TrimSpace(text)) < minExtractLength {
		return 0, fmt.Errorf("text too short to extract skills from")
	}
	extracted, err := e.client.ExtractSkills(ctx, text)
	if err != nil {
		return 0, err
	}
	return e.MergeExtracted(extracted), nil
}
