package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// DefaultAuthSecret is the fallback token signing secret. It is not fit
// for production; main logs a warning whenever it is in use.
const DefaultAuthSecret = "supersecret123"

// Config carries all process-wide settings, read once at startup.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	DBPath      string
	AuthSecret  string
	CORSOrigins []string
}

// Load reads configs/config.yml and applies BRAINLY_* environment
// overrides (e.g. BRAINLY_AUTH_SECRET overrides auth.secret). A missing
// config file is fine; the defaults below apply.
func Load() (*Config, error) {
	v := viper.New()
	v.AddConfigPath("configs") // configs/config.yml
	v.SetConfigName("config")

	v.SetEnvPrefix("BRAINLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8000")
	v.SetDefault("env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "brainly.db")
	v.SetDefault("auth.secret", DefaultAuthSecret)
	v.SetDefault("cors.origins", []string{})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		Port:        v.GetString("port"),
		Env:         v.GetString("env"),
		LogLevel:    v.GetString("log.level"),
		DBPath:      v.GetString("db.path"),
		AuthSecret:  v.GetString("auth.secret"),
		CORSOrigins: v.GetStringSlice("cors.origins"),
	}, nil
}

// UsesDefaultSecret reports whether the insecure fallback secret is active.
func (c *Config) UsesDefaultSecret() bool {
	return c.AuthSecret == DefaultAuthSecret
}
