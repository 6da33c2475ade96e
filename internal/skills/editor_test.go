package skills

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch-cli/internal/api"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(api.Options{BaseURL: server.URL})
}

func TestAdd_TrimsAndAppends(t *testing.T) {
	e := NewEditor(nil, nil)
	require.NoError(t, e.Add("  Go  "))
	assert.Equal(t, []string{"Go"}, e.Skills())
	assert.True(t, e.Dirty())
}

func TestAdd_BlankIgnored(t *testing.T) {
	e := NewEditor(nil, nil)
	require.NoError(t, e.Add("   "))
	require.NoError(t, e.Add(""))
	assert.Empty(t, e.Skills())
	assert.False(t, e.Dirty())
}

func TestAdd_CaseInsensitiveDuplicateRejected(t *testing.T) {
	e := NewEditor(nil, []string{"Go", "PostgreSQL"})

	err := e.Add("go")
	require.Error(t, err)

	var dup *DuplicateError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "go", dup.Skill)
	assert.Len(t, e.Skills(), 2)
}

func TestRemove_OutOfRangeIsNoOp(t *testing.T) {
	e := NewEditor(nil, []string{"Go"})
	e.Remove(-1)
	e.Remove(5)
	assert.Equal(t, []string{"Go"}, e.Skills())
	assert.False(t, e.Dirty())
}

func TestRemoveByName_CaseInsensitive(t *testing.T) {
	e := NewEditor(nil, []string{"Go", "Rust"})
	assert.True(t, e.RemoveByName("GO"))
	assert.False(t, e.RemoveByName("python"))
	assert.Equal(t, []string{"Rust"}, e.Skills())
}

func TestDirty_ComparesContentAndOrder(t *testing.T) {
	e := NewEditor(nil, []string{"Go", "Rust"})
	assert.False(t, e.Dirty())

	// Edit away and back again: the list equals its baseline, so there is
	// nothing to save.
	require.NoError(t, e.Add("Python"))
	assert.True(t, e.Dirty())
	e.Remove(2)
	assert.False(t, e.Dirty())

	// Same content, different order is still a change.
	e.Remove(0)
	require.NoError(t, e.Add("Go"))
	assert.Equal(t, []string{"Rust", "Go"}, e.Skills())
	assert.True(t, e.Dirty())
}

func TestMergeExtracted_CountsOnlyNewSkills(t *testing.T) {
	e := NewEditor(nil, []string{"Go"})
	added := e.MergeExtracted([]string{"go", "Docker", "  ", "Kubernetes", "docker"})
	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"Go", "Docker", "Kubernetes"}, e.Skills())
}

func TestSave_CleanListRejectedBeforeNetwork(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	e := NewEditor(client, []string{"Go"})
	require.Error(t, e.Save(context.Background()))
	assert.Zero(t, calls)
}

func TestSave_ReplacesListAndRebaselines(t *testing.T) {
	var sent map[string][]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/recommendations/skills", r.URL.Path)
		_ = json.NewDecoder(r.Body).Decode(&sent)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	})

	e := NewEditor(client, []string{"Go"})
	require.NoError(t, e.Add("Rust"))
	require.NoError(t, e.Save(context.Background()))

	assert.Equal(t, []string{"Go", "Rust"}, sent["skills"])
	assert.False(t, e.Dirty(), "a successful save becomes the new baseline")
}

func TestSave_FailureKeepsDirty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"boom"}`))
	})

	e := NewEditor(client, nil)
	require.NoError(t, e.Add("Go"))
	require.Error(t, e.Save(context.Background()))
	assert.True(t, e.Dirty())
}

func TestExtractFromText_TooShortRejectedBeforeNetwork(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	e := NewEditor(client, nil)
	_, err := e.ExtractFromText(context.Background(), "  go  ")
	require.Error(t, err)
	assert.Zero(t, calls)
}

func TestExtractFromText_MergesServerResult(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/recommendations/extract-skills", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"skills":  []string{"Go", "Kubernetes", "go"},
		})
	})

	e := NewEditor(client, []string{"Go"})
	added, err := e.ExtractFromText(context.Background(), "We are looking for a Go engineer with Kubernetes experience.")
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, []string{"Go", "Kubernetes"}, e.Skills())
}
