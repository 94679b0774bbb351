package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/spf13/viper"
)

const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

type StorageConfig struct {
	Driver string `mapstructure:"driver" validate:"required|in:sqlite,file"`
	Path   string `mapstructure:"path" validate:"required"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error"`
	File  string `mapstructure:"file" validate:"required"`
}

type WisdomCacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	SizeMB  int           `mapstructure:"sizeMB" validate:"min:0"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type WisdomConfig struct {
	APIKey  string            `mapstructure:"apiKey"`
	BaseURL string            `mapstructure:"baseURL" validate:"required"`
	Model   string            `mapstructure:"model" validate:"required"`
	Timeout time.Duration     `mapstructure:"timeout" validate:"required|min:1"`
	Cache   WisdomCacheConfig `mapstructure:"cache"`
}

type NarratorConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Command string `mapstructure:"command"`
	Rate    int    `mapstructure:"rate" validate:"min:0"`
}

type Config struct {
	DataDir  string         `mapstructure:"dataDir" validate:"required"`
	Language string         `mapstructure:"language" validate:"required|in:th,en"`
	Location string         `mapstructure:"location"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Logger   LoggerConfig   `mapstructure:"logger"`
	Wisdom   WisdomConfig   `mapstructure:"wisdom"`
	Narrator NarratorConfig `mapstructure:"narrator"`
}

// Load reads config.yaml from dataDir (or the explicit configFile), applies
// GENTLEMIND_* environment overrides and validates the result. A missing
// config.yaml in the data dir is not an error; every key has a default.
func Load(dataDir, configFile string) (Config, error) {
	if strings.TrimSpace(dataDir) == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	v := viper.New()
	setDefaults(v, dataDir)

	v.SetEnvPrefix("GENTLEMIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("wisdom.apiKey", "GENTLEMIND_API_KEY", "API_KEY")
	_ = v.BindEnv("logger.level", "GENTLEMIND_LOG_LEVEL")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(dataDir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var conf Config
	if err := v.Unmarshal(&conf); err != nil {
		return Config{}, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	if err := Validate(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func Validate(conf *Config) error {
	v := validate.Struct(conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %s", v.Errors.One())
	}
	if _, err := conf.Loc(); err != nil {
		return err
	}
	return nil
}

// Loc resolves the time zone used to bucket sessions into calendar days.
func (c Config) Loc() (*time.Location, error) {
	if c.Location == "" || strings.EqualFold(c.Location, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("invalid config: location %q: %w", c.Location, err)
	}
	return loc, nil
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("dataDir", dataDir)
	v.SetDefault("language", "en")
	v.SetDefault("location", "Local")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", filepath.Join(dataDir, "gentlemind.db"))
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file", "gentlemind.log")
	v.SetDefault("wisdom.baseURL", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("wisdom.model", "gemini-2.5-flash")
	v.SetDefault("wisdom.timeout", "8s")
	v.SetDefault("wisdom.cache.enabled", true)
	v.SetDefault("wisdom.cache.sizeMB", 1)
	v.SetDefault("wisdom.cache.ttl", "10m")
	v.SetDefault("narrator.enabled", true)
	v.SetDefault("narrator.command", defaultSpeechCommand())
	v.SetDefault("narrator.rate", 0)
}

func defaultSpeechCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak-ng"
}
