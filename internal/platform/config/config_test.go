package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		DataDir:  "/tmp/gentlemind",
		Language: "en",
		Storage:  StorageConfig{Driver: DriverSQLite, Path: "/tmp/gentlemind/gentlemind.db"},
		Logger:   LoggerConfig{Level: "info", File: "gentlemind.log"},
		Wisdom: WisdomConfig{
			BaseURL: "https://example.test/v1beta",
			Model:   "gemini-2.5-flash",
			Timeout: 8 * time.Second,
		},
	}
}

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf, err := Load(dir, "")
	require.NoError(t, err)

	assert.Equal(t, dir, conf.DataDir)
	assert.Equal(t, "en", conf.Language)
	assert.Equal(t, DriverSQLite, conf.Storage.Driver)
	assert.Equal(t, filepath.Join(dir, "gentlemind.db"), conf.Storage.Path)
	assert.Equal(t, 8*time.Second, conf.Wisdom.Timeout)
	assert.Equal(t, 10*time.Minute, conf.Wisdom.Cache.TTL)
	assert.Equal(t, "gemini-2.5-flash", conf.Wisdom.Model)
}

func TestLoad_ReadsYAMLFromDataDir(t *testing.T) {
	dir := t.TempDir()
	yaml := "language: th\nstorage:\n  driver: file\n  path: " + filepath.Join(dir, "kv") + "\nwisdom:\n  timeout: 2s\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	conf, err := Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, "th", conf.Language)
	assert.Equal(t, DriverFile, conf.Storage.Driver)
	assert.Equal(t, 2*time.Second, conf.Wisdom.Timeout)
}

func TestLoad_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv("GENTLEMIND_API_KEY", "secret")
	conf, err := Load(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "secret", conf.Wisdom.APIKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(t.TempDir(), "/nonexistent/config.yaml")
	assert.Error(t, err)
}

func TestLoad_RequiresDataDir(t *testing.T) {
	_, err := Load("", "")
	assert.Error(t, err)
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, Validate(validConfig()))
}

func TestValidate_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "redis"
	assert.Error(t, Validate(c))
}

func TestValidate_UnknownLanguage(t *testing.T) {
	c := validConfig()
	c.Language = "fr"
	assert.Error(t, Validate(c))
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	assert.Error(t, Validate(c))
}

func TestValidate_BadLocation(t *testing.T) {
	c := validConfig()
	c.Location = "Mars/Olympus"
	assert.Error(t, Validate(c))
}

func TestLoc(t *testing.T) {
	c := validConfig()
	loc, err := c.Loc()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	c.Location = "Asia/Bangkok"
	loc, err = c.Loc()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Bangkok", loc.String())
}
