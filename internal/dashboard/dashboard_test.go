package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/jobmatch-cli/internal/api"
	"github.com/jonathan/jobmatch-cli/internal/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(api.Options{BaseURL: server.URL})
}

func TestLoad_NilIdentityZeroState(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	c := NewController(client, nil)
	require.NoError(t, c.Load(context.Background(), nil))
	assert.Equal(t, Stats{}, c.Stats())
	assert.Empty(t, c.Recent())
	assert.Zero(t, calls)
}

func TestLoad_NoSkillsSkipsFetch(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { calls++ })

	c := NewController(client, nil)
	require.NoError(t, c.Load(context.Background(), &types.Identity{ID: "u1"}))

	assert.Zero(t, calls, "identities without skills must not issue a recommendations request")
	assert.Equal(t, Stats{}, c.Stats())
}

func TestLoad_DerivesStatsFromResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.JobsResponse{
			Success: true,
			Jobs: []types.Job{
				{ID: "j1", MatchScore: 0.87},
				{ID: "j2", MatchScore: 0.62},
			},
			Count: 12,
			Total: 12,
		})
	})

	c := NewController(client, nil)
	id := &types.Identity{ID: "u1", Skills: []string{"Go", "SQL", "Docker"}}
	require.NoError(t, c.Load(context.Background(), id))

	assert.Equal(t, Stats{Skills: 3, JobsMatched: 12, TopMatchScore: 87}, c.Stats())
	assert.Len(t, c.Recent(), 2)
}

func TestLoad_RecentCappedAtLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jobs := make([]types.Job, 9)
		for i := range jobs {
			jobs[i] = types.Job{ID: string(rune('a' + i)), MatchScore: 0.5}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(types.JobsResponse{Success: true, Jobs: jobs, Count: 9})
	})

	c := NewController(client, nil)
	require.NoError(t, c.Load(context.Background(), &types.Identity{ID: "u1", Skills: []string{"Go"}}))
	assert.Len(t, c.Recent(), RecentLimit)
}

func TestLoad_NoSkillsErrorTreatedAsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "No skills found. Please upload your resume or add skills first",
		})
	})

	// Identity claims skills but the server disagrees: the known error is an
	// expected-empty dashboard, not a failure.
	c := NewController(client, nil)
	require.NoError(t, c.Load(context.Background(), &types.Identity{ID: "u1", Skills: []string{"Go"}}))
	assert.Equal(t, 1, c.Stats().Skills)
	assert.Zero(t, c.Stats().JobsMatched)
}

func TestLoad_OtherErrorsPropagate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "error": "boom"})
	})

	c := NewController(client, nil)
	err := c.Load(context.Background(), &types.Identity{ID: "u1", Skills: []string{"Go"}})
	require.Error(t, err)

	var reqErr *api.RequestError
	assert.ErrorAs(t, err, &reqErr)
}
