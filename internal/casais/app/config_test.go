package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("DB_URL", "sqlite://casais.db")
	t.Setenv("SECRET", "s3cr3t")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 2000, cfg.Port)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	require.Equal(t, "casais_app", cfg.Media.Folder)
	require.Equal(t, "casais-api", cfg.Issuer)
	require.Empty(t, cfg.CORSOrigins)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TTL", "90")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "3s")
	t.Setenv("CORS_ORIGINS", "http://a.local, http://b.local,")
	t.Setenv("MEDIA_BUCKET", "fotos")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 9000, cfg.Port)
	require.Equal(t, 90*time.Minute, cfg.TokenTTL)
	require.Equal(t, 3*time.Second, cfg.ShutdownGracePeriod)
	require.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.CORSOrigins)
	require.Equal(t, "fotos", cfg.Media.Bucket)
}

func TestLoadConfigFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casais.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 3000
  cors_origins: ["http://app.local"]
database:
  url: postgres://casais@db/casais
auth:
  secret: from-file
  token_ttl: 2h
media:
  bucket: fotos
  endpoint: http://minio:9000
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("SECRET", "from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, 3000, cfg.Port)
	require.Equal(t, "postgres://casais@db/casais", cfg.DatabaseURL)
	require.Equal(t, "from-env", cfg.Secret)
	require.Equal(t, 2*time.Hour, cfg.TokenTTL)
	require.Equal(t, []string{"http://app.local"}, cfg.CORSOrigins)
	require.Equal(t, "http://minio:9000", cfg.Media.Endpoint)
	require.Equal(t, "casais_app", cfg.Media.Folder)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "casais.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth:\n  token_ttl: soon\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := LoadConfig()
	require.ErrorContains(t, err, "auth.token_ttl")

	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	_, err = LoadConfig()
	require.Error(t, err)
}

func TestValidateReportsMissingKeys(t *testing.T) {
	err := Config{TokenTTL: time.Hour}.Validate()
	require.ErrorContains(t, err, "DB_URL")
	require.ErrorContains(t, err, "SECRET")

	err = Config{DatabaseURL: "sqlite://x", Secret: "s"}.Validate()
	require.ErrorContains(t, err, "TOKEN_TTL")
}
