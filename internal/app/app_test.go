package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trainpilot/backend/internal/config"
)

func TestNewApp(t *testing.T) {
	t.Run("wires the server from a valid configuration", func(t *testing.T) {
		cfg := &config.Config{
			AppPort:            8000,
			LogLevel:           "DEBUG",
			SupabaseURL:        "http://identity.local",
			SupabaseServiceKey: "service-key",
			PlanningTimeout:    30 * time.Second,
		}

		application, err := NewApp(cfg)
		require.NoError(t, err)
		require.NotNil(t, application)
		assert.NotNil(t, application.Server)
		assert.Equal(t, ":8000", application.Server.Addr)
	})

	t.Run("refuses to start without identity provider configuration", func(t *testing.T) {
		_, err := NewApp(&config.Config{AppPort: 8000})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SUPABASE_URL")
	})
}
