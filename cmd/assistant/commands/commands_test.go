// cmd/assistant/commands/commands_test.go
package commands

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"inventory-assistant/internal/common/config"
	"inventory-assistant/internal/common/logger"
	"inventory-assistant/internal/models"
	"inventory-assistant/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Command Tree Tests
// ==========================

func TestNewRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()
	assert.Equal(t, "assistant", cmd.Use)

	names := make([]string, 0)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "ask", "migrate", "languages"}, names)

	flag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, flag)
	assert.Equal(t, "c", flag.Shorthand)
}

func TestAskCmd_Flags(t *testing.T) {
	cmd := NewAskCmd()
	assert.NotNil(t, cmd.Flags().Lookup("lang"))
	assert.NotNil(t, cmd.Flags().Lookup("tenant"))
	assert.Error(t, cmd.Args(cmd, []string{}))
}

func TestLanguagesCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"languages"})

	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "en-US")
	assert.Contains(t, lines[0], "English")
	assert.Contains(t, out.String(), "hi-IN")
	assert.Contains(t, out.String(), "te-IN")
}

func TestMigrateCmd_Args(t *testing.T) {
	cmd := NewMigrateCmd()
	assert.Error(t, cmd.Args(cmd, []string{}))
	assert.NoError(t, cmd.Args(cmd, []string{"force", "1"}))
	assert.Equal(t, "migrations", cmd.Flags().Lookup("path").DefValue)
}

// ==========================
// Startup Helper Tests
// ==========================

func TestRetryWithBackoff(t *testing.T) {
	log := logger.NewTestLogger(t)

	t.Run("succeeds after failures", func(t *testing.T) {
		calls := 0
		err := retryWithBackoff(func() error {
			calls++
			if calls < 3 {
				return errors.New("connection refused")
			}
			return nil
		}, 5, time.Millisecond, log, "dial")

		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		cause := errors.New("connection refused")
		calls := 0
		err := retryWithBackoff(func() error {
			calls++
			return cause
		}, 2, time.Millisecond, log, "dial")

		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "dial failed after 2 attempts")
		assert.Equal(t, 2, calls)
	})
}

func TestNewNotifier(t *testing.T) {
	log := logger.NewTestLogger(t)
	supplier := models.Supplier{Name: "Ram Traders", Email: "ram@example.com", Phone: "+919800000000"}

	t.Run("no transports", func(t *testing.T) {
		var cfg config.NotificationConfig
		cfg.Email.Provider = "none"

		d, err := newNotifier(context.Background(), cfg, log)
		require.NoError(t, err)

		result := d.NotifySupplierDemand(context.Background(), d.ChannelFor(supplier), "Ram Traders", "rice", "10 kg")
		assert.False(t, result.OK)
		assert.Equal(t, notify.ReasonNotConfigured, result.Reason)
	})

	t.Run("incomplete smtp settings", func(t *testing.T) {
		var cfg config.NotificationConfig
		cfg.Email.Provider = "smtp"
		cfg.SMTP.Host = "smtp.example.com"
		cfg.SMTP.Port = 587

		d, err := newNotifier(context.Background(), cfg, log)
		require.NoError(t, err)

		result := d.NotifySupplierDemand(context.Background(), d.ChannelFor(supplier), "Ram Traders", "rice", "10 kg")
		assert.Equal(t, notify.ReasonNotConfigured, result.Reason)
	})
}

func TestNewStages(t *testing.T) {
	cfg := &config.Config{}
	cfg.Languages.Default = "hi-IN"
	cfg.Oracle.Provider = "none"
	cfg.Oracle.Polish = true

	stages, err := newStages(cfg, nil, logger.NewNoOpLogger())
	require.NoError(t, err)
	assert.Equal(t, "hi-IN", stages.Renderer.Catalog().Default().Code)

	cfg.Languages.Default = "fr-FR"
	_, err = newStages(cfg, nil, logger.NewNoOpLogger())
	assert.Error(t, err)
}
