package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCreatesDefault(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5000/api", cfg.API.URL)
	assert.Equal(t, "text", cfg.Defaults.Format)

	_, err = os.Stat(Path(dir))
	assert.NoError(t, err, "default config file should be written")
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cfg := Default()
	cfg.API.URL = "https://ledger.example.com/api"
	cfg.Defaults.OrgID = "org-42"
	require.NoError(t, Save(cfg, dir))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://ledger.example.com/api", got.API.URL)
	assert.Equal(t, "org-42", got.Defaults.OrgID)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LEDGERLINE_API_URL", "https://env.example.com/api")
	t.Setenv("LEDGERLINE_TIMEOUT_SECONDS", "5")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com/api", cfg.API.URL)
	assert.Equal(t, 5*time.Second, cfg.Timeout())
}

func TestGetSet(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Set("defaults.org_id", "org-7"))
	got, err := cfg.Get("defaults.org_id")
	require.NoError(t, err)
	assert.Equal(t, "org-7", got)

	require.NoError(t, cfg.Set("api.timeout_seconds", "10"))
	got, err = cfg.Get("api.timeout_seconds")
	require.NoError(t, err)
	assert.Equal(t, "10", got)

	assert.Error(t, cfg.Set("api.timeout_seconds", "many"))
	assert.Error(t, cfg.Set("nope", "x"))
	_, err = cfg.Get("nope")
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte("api: [broken"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
