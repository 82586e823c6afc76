package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "", cfg.Fixtures)
	assert.Equal(t, 60*time.Second, cfg.ReadTimeout)
	assert.True(t, cfg.Metrics)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:3000")
	assert.Equal(t, ":3000", cfg.ListenAddr())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("COMMAND_CENTER_PORT", "8080")
	t.Setenv("COMMAND_CENTER_LOG_LEVEL", "debug")
	t.Setenv("COMMAND_CENTER_FIXTURES", "/data/dashboard.yaml")
	t.Setenv("COMMAND_CENTER_METRICS", "false")

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/data/dashboard.yaml", cfg.Fixtures)
	assert.False(t, cfg.Metrics)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "command-center.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"9090\"\nread_timeout: 15s\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)

	// Environment wins over the file.
	t.Setenv("COMMAND_CENTER_PORT", "7070")
	cfg, err = Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	const origin = "http://localhost:3000"
	cases := []struct {
		name string
		cfg  Config
		ok   bool
	}{
		{"valid", Config{Port: "3000", ReadTimeout: time.Second, CORSOrigins: origin}, true},
		{"several origins", Config{Port: "3000", ReadTimeout: time.Second, CORSOrigins: origin + ", http://127.0.0.1:4000"}, true},
		{"port not a number", Config{Port: "http", ReadTimeout: time.Second, CORSOrigins: origin}, false},
		{"port out of range", Config{Port: "70000", ReadTimeout: time.Second, CORSOrigins: origin}, false},
		{"zero timeout", Config{Port: "3000", CORSOrigins: origin}, false},
		{"wildcard origin", Config{Port: "3000", ReadTimeout: time.Second, CORSOrigins: "*"}, false},
		{"wildcard among origins", Config{Port: "3000", ReadTimeout: time.Second, CORSOrigins: origin + ",*"}, false},
		{"blank origins", Config{Port: "3000", ReadTimeout: time.Second, CORSOrigins: " , "}, false},
		{"no origins", Config{Port: "3000", ReadTimeout: time.Second}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.cfg.Validate()
			if c.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestLoad_RejectsWildcardOrigins(t *testing.T) {
	v := viper.New()
	v.Set("cors_origins", "*")
	_, err := Load(v, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cors_origins")

	t.Setenv("COMMAND_CENTER_CORS_ORIGINS", "http://localhost:3000,*")
	_, err = Load(viper.New(), "")
	assert.Error(t, err)
}
