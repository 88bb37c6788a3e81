package config

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for defaults
	// to apply.
	t.Setenv("LAUNCHCUE_SERVER", "x")
	t.Setenv("LAUNCHCUE_NON_INTERACTIVE", "x")
	os.Unsetenv("LAUNCHCUE_SERVER")
	os.Unsetenv("LAUNCHCUE_NON_INTERACTIVE")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.False(t, cfg.NonInteractive)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LAUNCHCUE_SERVER", "https://api.launchcue.example")
	t.Setenv("LAUNCHCUE_NON_INTERACTIVE", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "https://api.launchcue.example", cfg.ServerURL)
	assert.True(t, cfg.NonInteractive)
}

func TestContextRoundTrip(t *testing.T) {
	cfg := &GlobalConfig{ServerURL: "http://localhost:3000"}
	ctx := InjectConfig(context.Background(), cfg)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cfg, got)

	assert.Same(t, cfg, MustFromContext(ctx))
}

func TestMustFromContextPanicsWithoutConfig(t *testing.T) {
	assert.Panics(t, func() {
		MustFromContext(context.Background())
	})
}
