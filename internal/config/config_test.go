package config_test

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "secret-pass")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	assert.Equal(t, "dev", cfg.GoEnv)
	assert.Equal(t, "*", cfg.FEURL)
}

func TestLoad_HashesAdminPassword(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	//平文はハッシュ化されて保持される
	err = bcrypt.CompareHashAndPassword(cfg.AdminPasswordHash, []byte("secret-pass"))
	assert.NoError(t, err)
}

func TestLoad_PrefersPasswordHash(t *testing.T) {
	setRequired(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("other"), bcrypt.MinCost)
	require.NoError(t, err)
	t.Setenv("ADMIN_PASSWORD_HASH", string(hash))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, hash, cfg.AdminPasswordHash)
}

func TestLoad_RequiredVars(t *testing.T) {
	setRequired(t)
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)

	setRequired(t)
	t.Setenv("ADMIN_EMAIL", "")

	_, err = config.Load()
	require.Error(t, err)
}
