// Package resume implements the resume manager: upload, download, delete, and
// bulk-replace editing of the work-history and education sub-lists. The API
// has no per-entry update endpoint, so every add, edit, or delete reconstructs
// the full sub-list locally and overwrites it server-side in one call.
package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/schemas"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

// MaxUploadSize is the declared upload ceiling. It is advisory: the check
// lives server-side, the client only communicates the constraint.
const MaxUploadSize = 5 << 20

// allowedExtensions are the accepted resume file extensions, checked on the
// file name only, never on content.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
}

// UnsupportedFileError is returned for resume uploads with an extension the
// backend cannot parse.
type UnsupportedFileError struct {
	FileName string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("unsupported resume file %q: only PDF and DOCX are accepted", e.FileName)
}

// Manager holds the fetched resume record and performs its operations.
type Manager struct {
	client   *api.Client
	validate *validator.Validate

	record *types.ResumeRecord
}

// NewManager creates a resume manager.
func NewManager(client *api.Client) *Manager {
	return &Manager{client: client, validate: validator.New()}
}

// Record returns the record from the last successful Load, or nil when no
// resume is stored.
func (m *Manager) Record() *types.ResumeRecord { return m.record }

// Load fetches the stored resume record.
func (m *Manager) Load(ctx context.Context) error {
	record, err := m.client.Resume(ctx)
	if err != nil {
		return err
	}
	m.record = record
	return nil
}

// Upload validates the file name extension and posts the file. The server
// extracts skills as a side effect, so callers should reload the identity
// afterwards. Size is not enforced here; files over MaxUploadSize are
// rejected by the backend.
func (m *Manager) Upload(ctx context.Context, path string) error {
	if !allowedExtensions[strings.ToLower(filepath.Ext(path))] {
		return &UnsupportedFileError{FileName: filepath.Base(path)}
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening resume file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return m.client.UploadResume(ctx, filepath.Base(path), f)
}

// Download streams the stored resume into destPath.
func (m *Manager) Download(ctx context.Context, destPath string) (int64, error) {
	f, err := os.Create(destPath)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", destPath, err)
	}
	defer func() { _ = f.Close() }()

	return m.client.DownloadResume(ctx, f)
}

// Delete removes the stored resume and its extracted skills, then clears the
// local record.
func (m *Manager) Delete(ctx context.Context) error {
	if err := m.client.DeleteResume(ctx); err != nil {
		return err
	}
	m.record = nil
	return nil
}

// workHistory returns the current work-history list, empty when no resume is
// loaded yet.
func (m *Manager) workHistory() []types.WorkEntry {
	if m.record == nil {
		return nil
	}
	return m.record.WorkHistory
}

func (m *Manager) education() []types.EduEntry {
	if m.record == nil {
		return nil
	}
	return m.record.Education
}

// AddWork appends an entry and replaces the sub-list server-side.
func (m *Manager) AddWork(ctx context.Context, entry types.WorkEntry) error {
	if err := m.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid work entry: %w", err)
	}
	updated := append(append([]types.WorkEntry(nil), m.workHistory()...), entry)
	return m.replaceWork(ctx, updated)
}

// EditWork replaces the entry at index and overwrites the sub-list.
func (m *Manager) EditWork(ctx context.Context, index int, entry types.WorkEntry) error {
	current := m.workHistory()
	if index < 0 || index >= len(current) {
		return fmt.Errorf("work entry %d does not exist", index)
	}
	if err := m.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid work entry: %w", err)
	}
	updated := append([]types.WorkEntry(nil), current...)
	updated[index] = entry
	return m.replaceWork(ctx, updated)
}

// RemoveWork drops the entry at index and overwrites the sub-list.
func (m *Manager) RemoveWork(ctx context.Context, index int) error {
	current := m.workHistory()
	if index < 0 || index >= len(current) {
		return fmt.Errorf("work entry %d does not exist", index)
	}
	updated := append([]types.WorkEntry(nil), current[:index]...)
	updated = append(updated, current[index+1:]...)
	return m.replaceWork(ctx, updated)
}

// ImportWork validates a JSON file against the embedded schema and replaces
// the entire work history with its contents.
func (m *Manager) ImportWork(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.WorkHistory(), data); err != nil {
		return err
	}
	var entries []types.WorkEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}
	return m.replaceWork(ctx, entries)
}

func (m *Manager) replaceWork(ctx context.Context, entries []types.WorkEntry) error {
	if err := m.client.ReplaceWorkHistory(ctx, entries); err != nil {
		return err
	}
	if m.record == nil {
		m.record = &types.ResumeRecord{}
	}
	m.record.WorkHistory = entries
	return nil
}

// AddEducation appends an entry and replaces the sub-list server-side.
func (m *Manager) AddEducation(ctx context.Context, entry types.EduEntry) error {
	if err := m.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid education entry: %w", err)
	}
	updated := append(append([]types.EduEntry(nil), m.education()...), entry)
	return m.replaceEducation(ctx, updated)
}

// EditEducation replaces the entry at index and overwrites the sub-list.
func (m *Manager) EditEducation(ctx context.Context, index int, entry types.EduEntry) error {
	current := m.education()
	if index < 0 || index >= len(current) {
		return fmt.Errorf("education entry %d does not exist", index)
	}
	if err := m.validate.Struct(entry); err != nil {
		return fmt.Errorf("invalid education entry: %w", err)
	}
	updated := append([]types.EduEntry(nil), current...)
	updated[index] = entry
	return m.replaceEducation(ctx, updated)
}

// RemoveEducation drops the entry at index and overwrites the sub-list.
func (m *Manager) RemoveEducation(ctx context.Context, index int) error {
	current := m.education()
	if index < 0 || index >= len(current) {
		return fmt.Errorf("education entry %d does not exist", index)
	}
	updated := append([]types.EduEntry(nil), current[:index]...)
	updated = append(updated, current[index+1:]...)
	return m.replaceEducation(ctx, updated)
}

// ImportEducation validates a JSON file against the embedded schema and
// replaces the entire education list with its contents.
func (m *Manager) ImportEducation(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading import file: %w", err)
	}
	if err := schemas.ValidateBytes(schemas.Education(), data); err != nil {
		return err
	}
	var entries []types.EduEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing import file: %w", err)
	}
	return m.replaceEducation(ctx, entries)
}

func (m *Manager) replaceEducation(ctx context.Context, entries []types.EduEntry) error {
	if err := m.client.ReplaceEducation(ctx, entries); err != nil {
		return err
	}
	if m.record == nil {
		m.record = &types.ResumeRecord{}
	}
	m.record.Education = entries
	return nil
}
