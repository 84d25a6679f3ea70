// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/linoMlv/abacus/internal/auth"
)

// Config holds everything the server needs at startup.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `mapstructure:"addr"`

	// DBPath is the SQLite database file path.
	DBPath string `mapstructure:"db_path"`

	// Secret signs bearer tokens. Required; the server refuses to start
	// without it so a key can never end up hard-coded in source.
	Secret string `mapstructure:"secret"`

	// TokenTTLMinutes is the bearer token lifetime.
	TokenTTLMinutes int `mapstructure:"token_ttl_minutes"`

	// StaticDir optionally serves a frontend build. Empty disables it.
	StaticDir string `mapstructure:"static_dir"`

	// CORSOrigins are the browser origins allowed to call the API.
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// ErrMissingSecret is returned when ABACUS_SECRET is not set.
var ErrMissingSecret = errors.New("ABACUS_SECRET must be set")

// TokenTTL returns the token lifetime as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// Load reads configuration from ABACUS_* environment variables,
// e.g. ABACUS_ADDR=:9000, ABACUS_DB_PATH=/var/lib/abacus/ledger.db.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ABACUS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "./data/abacus.db")
	v.SetDefault("token_ttl_minutes", int(auth.DefaultTokenTTL/time.Minute))
	v.SetDefault("static_dir", "")
	v.SetDefault("cors_origins", "http://localhost:5173,http://localhost:3000")

	c := &Config{
		Addr:            v.GetString("addr"),
		DBPath:          v.GetString("db_path"),
		Secret:          v.GetString("secret"),
		TokenTTLMinutes: v.GetInt("token_ttl_minutes"),
		StaticDir:       v.GetString("static_dir"),
		CORSOrigins:     splitOrigins(v.GetString("cors_origins")),
	}

	if c.Secret == "" {
		return nil, ErrMissingSecret
	}

	return c, nil
}

func splitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
