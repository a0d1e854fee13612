package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "DATABASE_URL=postgres://trackr@localhost/trackr\nJWT_SECRET=file-secret\nPORT=9090\nREQUIRE_EMAIL_CONFIRMATION=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres://trackr@localhost/trackr", cfg.DatabaseURL)
	assert.Equal(t, "file-secret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.RequireEmailConfirmation)
	assert.Equal(t, 7*24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=file-secret\n"), 0o600))
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("STORAGE_DIR", "/var/lib/trackr")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, "/var/lib/trackr", cfg.StorageDir)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
