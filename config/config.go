package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every setting linda's engine, HTTP frontend, and audit store
// read at startup. Field names track the LINDA_* environment variables
// named in SPEC_FULL.md §6.
type Config struct {
	Dir string `mapstructure:"dir"`

	HTTP struct {
		Addr         string        `mapstructure:"addr"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
		IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
	} `mapstructure:"http"`

	Audit struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"audit"`
}

// NewConfig resolves a Config the way the teacher resolves its own: env
// vars take precedence, an optional YAML file is read next (fallbackPath,
// or LINDA_CONFIG if fallbackPath is empty), and compiled-in defaults fill
// whatever neither of those set. Unlike the teacher's hand-rolled
// getEnvString/getEnvInt/... helpers, resolution here is delegated to
// Viper, which the rest of the example pack (GoogleCloudPlatform-gcsfuse,
// zeoday-chatlog) already uses for the same job.
func NewConfig(fallbackPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("dir", "/tmp/linda")
	v.SetDefault("http.addr", ":7357")
	v.SetDefault("http.read_timeout", 30*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)

	v.SetEnvPrefix("LINDA")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnv(v, "dir", "LINDA_DIR")
	bindEnv(v, "http.addr", "LINDA_HTTP_ADDR")
	bindEnv(v, "audit.dsn", "LINDA_AUDIT_DSN")

	if fallbackPath == "" {
		fallbackPath = os.Getenv("LINDA_CONFIG")
	}
	if fallbackPath != "" {
		v.SetConfigFile(fallbackPath)
		v.SetConfigType("yaml")
		// A missing or unreadable fallback file is not an error: env vars
		// and defaults are enough to run on. Only a malformed file that
		// exists and fails to parse is surfaced.
		if err := v.ReadInConfig(); err != nil {
			var pathErr *os.PathError
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.As(err, &pathErr) {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// audit.dsn's default depends on the resolved dir, so it can't be a
	// plain SetDefault: only fill it in if nothing set it explicitly.
	if cfg.Audit.DSN == "" {
		cfg.Audit.DSN = filepath.Join(cfg.Dir, ".linda-audit.db")
	}

	return cfg, nil
}

func bindEnv(v *viper.Viper, key, env string) {
	// Explicit BindEnv calls on top of AutomaticEnv: the nested mapstructure
	// keys ("http.addr") don't auto-derive the flat LINDA_HTTP_ADDR name
	// AutomaticEnv alone would produce from SetEnvKeyReplacer.
	_ = v.BindEnv(key, env)
}
