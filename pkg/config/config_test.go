package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "ynaut", cfg.DBName)
	assert.Equal(t, "files", cfg.S3BucketName)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("REDIS_DB", "3")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestDSN_FromParts(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBName:     "ynaut",
		DBSSLMode:  "disable",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=ynaut")
	assert.NotContains(t, dsn, "search_path")
}

func TestDSN_DatabaseURLWins(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://u:p@db:5432/app",
		DBHost:      "ignored",
	}

	dsn := cfg.DSN()
	assert.Equal(t, "postgres://u:p@db:5432/app", dsn)
}

func TestDSN_SchemaAppended(t *testing.T) {
	cfg := &Config{
		DatabaseURL: "postgres://u:p@db:5432/app",
		DBSchema:    "ynaut_main",
	}

	dsn := cfg.DSN()
	assert.Contains(t, dsn, "search_path=ynaut_main")
}

func TestLoad_RedisDBInvalidFallsBack(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 0, cfg.RedisDB)
}
