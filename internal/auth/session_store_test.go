package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virgilvox/launchcue-sub001/pkg/sdk"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	state := &sdk.SessionState{
		Identity: &sdk.Identity{ID: "user-1", Name: "Ada", Email: "ada@example.com"},
		Token:    "header.payload.signature",
		Roster: []sdk.TeamMembership{
			{TeamID: "team-a", TeamName: "Acme", Role: sdk.RoleAdmin},
		},
		CurrentTeam: "team-a",
	}
	require.NoError(t, store.Save(state))

	loaded, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, state.Token, loaded.Token)
	assert.Equal(t, "team-a", loaded.CurrentTeam)
	require.Len(t, loaded.Roster, 1)
	assert.Equal(t, sdk.RoleAdmin, loaded.Roster[0].Role)
	assert.Equal(t, "Ada", loaded.Identity.Name)
}

func TestFileStoreLoadMissingReturnsNil(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreClearIsIdempotent(t *testing.T) {
	store := NewFileStoreAt(filepath.Join(t.TempDir(), "session.json"))

	require.NoError(t, store.Save(&sdk.SessionState{
		Identity: &sdk.Identity{ID: "user-1"},
		Token:    "t",
	}))
	require.NoError(t, store.Clear())

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing again is a no-op, not an error.
	require.NoError(t, store.Clear())
}
