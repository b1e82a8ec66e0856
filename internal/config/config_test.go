package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFrom_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `ui:
  theme: mocha
  bell: false
  skip_boot: true
profile:
  domain: example.dev
  email: me@example.dev
  socials:
    - name: github
      url: https://github.com/me
    - name: blog
      url: https://example.dev
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0600))

	cfg, err := LoadFrom(path)

	require.NoError(t, err)
	assert.Equal(t, "mocha", cfg.UI.Theme)
	assert.False(t, cfg.UI.Bell)
	assert.True(t, cfg.UI.SkipBoot)
	assert.Equal(t, "example.dev", cfg.Profile.Domain)
	assert.Equal(t, []Social{
		{Name: "github", URL: "https://github.com/me"},
		{Name: "blog", URL: "https://example.dev"},
	}, cfg.Profile.Socials)
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [unclosed"), 0600))

	_, err := LoadFrom(path)

	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSaveTheme_KeepsOtherSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Profile.Email = "me@example.dev"
	require.NoError(t, SaveTo(path, cfg))

	require.NoError(t, SaveTheme(path, "latte"))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "latte", got.UI.Theme)
	assert.Equal(t, "me@example.dev", got.Profile.Email)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvTheme, " Frappe ")
	t.Setenv(EnvDomain, "env.dev")
	t.Setenv(EnvEmail, "")

	cfg := DefaultConfig()
	cfg.Profile.Email = "file@example.dev"
	cfg.ApplyEnv()

	assert.Equal(t, "frappe", cfg.UI.Theme)
	assert.Equal(t, "env.dev", cfg.Profile.Domain)
	assert.Equal(t, "file@example.dev", cfg.Profile.Email)
}

func TestLoadEnvFile(t *testing.T) {
	require.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("TERMFOLIO_DOMAIN=dotenv.dev\n"), 0600))
	t.Setenv(EnvDomain, "")
	os.Unsetenv(EnvDomain)

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "dotenv.dev", os.Getenv(EnvDomain))
	os.Unsetenv(EnvDomain)
}
