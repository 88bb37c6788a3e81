package sdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceClientRoutes(t *testing.T) {
	var gotMethod, gotPath, gotQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		switch r.Method {
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			if gotPath == "/projects" {
				json.NewEncoder(w).Encode([]Project{{ID: "p1"}})
				return
			}
			json.NewEncoder(w).Encode(Project{ID: "p1", Name: "Site redesign"})
		default:
			json.NewEncoder(w).Encode(Project{ID: "p2", Name: "Launch plan"})
		}
	}))
	defer ts.Close()

	projects := NewResourceClient[Project](NewGateway(ts.URL), "/projects")
	ctx := context.Background()

	list, err := projects.List(ctx, url.Values{"client_id": {"c1"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "GET", gotMethod)
	assert.Equal(t, "/projects", gotPath)
	assert.Equal(t, "client_id=c1", gotQuery)

	got, err := projects.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Site redesign", got.Name)
	assert.Equal(t, "/projects/p1", gotPath)

	created, err := projects.Create(ctx, map[string]string{"name": "Launch plan"})
	require.NoError(t, err)
	assert.Equal(t, "p2", created.ID)
	assert.Equal(t, "POST", gotMethod)
	assert.Equal(t, "/projects", gotPath)

	_, err = projects.Update(ctx, "p2", map[string]string{"name": "Launch plan v2"})
	require.NoError(t, err)
	assert.Equal(t, "PUT", gotMethod)
	assert.Equal(t, "/projects/p2", gotPath)

	require.NoError(t, projects.Delete(ctx, "p2"))
	assert.Equal(t, "DELETE", gotMethod)
	assert.Equal(t, "/projects/p2", gotPath)
}

func TestTeamsClient(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode([]TeamSummary{{ID: "team-a", Name: "Acme", Role: "owner"}})
		case http.MethodPost:
			var body struct {
				Name string `json:"name"`
			}
			json.NewDecoder(r.Body).Decode(&body)
			json.NewEncoder(w).Encode(TeamSummary{ID: "team-b", Name: body.Name, Role: "owner"})
		}
	}))
	defer ts.Close()

	teams := NewTeamsClient(NewGateway(ts.URL))

	list, err := teams.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Acme", list[0].Name)

	created, err := teams.Create(context.Background(), "Blue")
	require.NoError(t, err)
	assert.Equal(t, "Blue", created.Name)
}
