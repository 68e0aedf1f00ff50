package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("HOME", dir)
	return dir
}

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	chdirTemp(t)

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, BackendSQLite, env.Storage.Backend)
	assert.Equal(t, "ledger", env.Storage.Key)
	assert.Equal(t, "localhost", env.Storage.Postgres.Address)
	assert.Equal(t, "5433", env.Storage.Postgres.Port)
	assert.Equal(t, 1000, env.Operator.QueueSize)
}

func TestProcessEnvironmentVariables_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_STORAGE_BACKEND", "memory")
	t.Setenv("LEDGER_PORT", "8080")
	t.Setenv("POSTGRES_ADDRESS", "db.internal")

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, env.Storage.Backend)
	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, "db.internal", env.Storage.Postgres.Address)
}

func TestProcessEnvironmentVariables_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	yaml := "storage:\n  backend: file\n  dir: /tmp/ledger\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ledger.yaml"), []byte(yaml), 0o600))

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, env.Storage.Backend)
	assert.Equal(t, "/tmp/ledger", env.Storage.Dir)
}

func TestProcessEnvironmentVariables_UnknownBackend(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LEDGER_STORAGE_BACKEND", "redis")

	_, err := ProcessEnvironmentVariables()
	assert.Error(t, err)
}

func TestPostgresConfig_DSN(t *testing.T) {
	p := PostgresConfig{Address: "h", Port: "1", DB: "d", Username: "u", Password: "p"}
	assert.Equal(t, "postgres://u:p@h:1/d?sslmode=disable", p.DSN())
}
