// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

const minimalConfig = `
database:
  postgres:
    host: localhost
    database: inventory
    user: shop
`

// ==========================
// Defaults
// ==========================

func TestLoadFromFile_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg, err := LoadFromFile(writeConfig(t, minimalConfig))
	require.NoError(t, err)

	assert.Equal(t, "inventory-assistant", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 25000, cfg.Server.RequestTimeout)
	assert.Equal(t, "answer-inventory-question", cfg.Camunda.JobType)
	assert.False(t, cfg.Camunda.Enabled())
	assert.Equal(t, 5432, cfg.Database.Postgres.Port)
	assert.Equal(t, 3000, cfg.Database.Postgres.QueryTimeout)
	assert.False(t, cfg.Database.Redis.Enabled())
	assert.False(t, cfg.Database.Elasticsearch.Enabled())
	assert.Equal(t, "products", cfg.Database.Elasticsearch.Index)
	assert.Equal(t, "none", cfg.Oracle.Provider)
	assert.Equal(t, 4000, cfg.Oracle.Timeout)
	assert.Equal(t, "smtp", cfg.Notifications.Email.Provider)
	assert.Equal(t, 587, cfg.Notifications.SMTP.Port)
	assert.Equal(t, "en-US", cfg.Languages.Default)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile_ProviderModelDefault(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, minimalConfig+`
oracle:
  provider: ollama
`))
	require.NoError(t, err)
	assert.Equal(t, "mistral", cfg.Oracle.Model)
}

// ==========================
// Environment
// ==========================

func TestLoadFromFile_ExpandsPlaceholders(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")

	cfg, err := LoadFromFile(writeConfig(t, `
database:
  postgres:
    host: ${TEST_DB_HOST}
    database: inventory
    user: shop
`))
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Database.Postgres.Host)
}

func TestLoadFromFile_EnvOverride(t *testing.T) {
	t.Setenv("LANGUAGES_DEFAULT", "hi-IN")
	t.Setenv("SMTP_FROM", "stock@example.com")

	cfg, err := LoadFromFile(writeConfig(t, minimalConfig))
	require.NoError(t, err)
	assert.Equal(t, "hi-IN", cfg.Languages.Default)
	assert.Equal(t, "stock@example.com", cfg.Notifications.Email.FromEmail)
}

// ==========================
// Validation
// ==========================

func TestLoadFromFile_Invalid(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	tests := []struct {
		name  string
		extra string
		want  string
	}{
		{"unknown oracle", "oracle:\n  provider: magic\n", "unknown oracle.provider"},
		{"openai without key", "oracle:\n  provider: openai\n", "oracle.api_key is required"},
		{"genai without url", "oracle:\n  provider: genai\n", "oracle.base_url is required"},
		{"oracle timeout too long", "oracle:\n  timeout: 60000\n", "oracle.timeout"},
		{"unknown email provider", "notifications:\n  email:\n    provider: fax\n", "unknown notifications.email.provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, minimalConfig+tt.extra))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFromFile_MissingPostgres(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "app:\n  name: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.postgres.host is required")
}

func TestPostgresConfig_ConnectionStrings(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, Database: "inventory", User: "shop", Password: "p@ss", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=shop password=p@ss dbname=inventory sslmode=disable", p.GetDSN())
	assert.Equal(t, "postgres://shop:p%40ss@db:5432/inventory?sslmode=disable", p.URL())
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))
}
