package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/folio-cms/folio/internal/config"
)

func TestApplyPortFlag_ExplicitDefaultOverridesEnv(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"--port", "8080"}))

	cfg := &config.Config{Port: "9000"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "8080", cfg.Port, "an explicit --port wins even at the default value")
}

func TestApplyPortFlag_UnsetKeepsEnv(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse(nil))

	cfg := &config.Config{Port: "9000"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "9000", cfg.Port)
}

func TestApplyPortFlag_Shorthand(t *testing.T) {
	cmd := ServeCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-p", "3000"}))

	cfg := &config.Config{Port: "8080"}
	applyPortFlag(cmd, cfg)

	assert.Equal(t, "3000", cfg.Port)
}
