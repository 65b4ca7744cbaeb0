package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config application configuration, loaded from a yaml file with
// environment variable overrides
type Config struct {
	Server struct {
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
	} `yaml:"database"`

	Redis struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		PoolSize int    `yaml:"pool_size"`
	} `yaml:"redis"`

	JWT struct {
		Secret string   `yaml:"secret"`
		Expiry Duration `yaml:"expiry"`
	} `yaml:"jwt"`

	// Lifecycle holds the retention knobs for version history and the
	// recycle bin. Defaults match production; tests override freely.
	Lifecycle LifecycleConfig `yaml:"lifecycle"`

	Maintenance struct {
		Secret     string   `yaml:"secret"`
		SweepEvery Duration `yaml:"sweep_every"`
	} `yaml:"maintenance"`

	SMTP struct {
		Enabled  bool   `yaml:"enabled"`
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
	} `yaml:"smtp"`
}

// Duration wraps time.Duration so yaml accepts "24h" style strings
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration: %s", value.Value)
	}
	*d = Duration(n)
	return nil
}

// Std returns the wrapped time.Duration
func (d Duration) Std() time.Duration { return time.Duration(d) }

// LifecycleConfig retention windows shared by the core services
type LifecycleConfig struct {
	MaxVersionsPerEntity int    `yaml:"max_versions_per_entity"`
	RetentionDays        int    `yaml:"retention_days"`
	WarningDays          int    `yaml:"warning_days"`
	OperatorEmail        string `yaml:"operator_email"`
}

// DefaultLifecycle production retention defaults
func DefaultLifecycle() LifecycleConfig {
	return LifecycleConfig{
		MaxVersionsPerEntity: 30,
		RetentionDays:        20,
		WarningDays:          5,
	}
}

// Load reads a yaml config file and applies env overrides
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.Env = "local"
	cfg.Redis.PoolSize = 10
	cfg.JWT.Expiry = Duration(24 * time.Hour)
	cfg.Lifecycle = DefaultLifecycle()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	applyEnvOverrides(cfg)
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideInt(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Database.User, "DB_USER")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.Name, "DB_NAME")
	overrideString(&cfg.Redis.Host, "REDIS_HOST")
	overrideInt(&cfg.Redis.Port, "REDIS_PORT")
	overrideString(&cfg.Redis.Password, "REDIS_PASSWORD")
	overrideString(&cfg.JWT.Secret, "JWT_SECRET")
	overrideString(&cfg.Maintenance.Secret, "MAINTENANCE_SECRET")
	overrideInt(&cfg.Lifecycle.MaxVersionsPerEntity, "MAX_VERSIONS_PER_ENTITY")
	overrideInt(&cfg.Lifecycle.RetentionDays, "RETENTION_DAYS")
	overrideInt(&cfg.Lifecycle.WarningDays, "WARNING_DAYS")
	overrideString(&cfg.Lifecycle.OperatorEmail, "OPERATOR_EMAIL")
	overrideString(&cfg.SMTP.Host, "SMTP_HOST")
	overrideInt(&cfg.SMTP.Port, "SMTP_PORT")
	overrideString(&cfg.SMTP.Username, "SMTP_USERNAME")
	overrideString(&cfg.SMTP.Password, "SMTP_PASSWORD")
	overrideString(&cfg.SMTP.From, "SMTP_FROM")
}

func overrideString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func overrideInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}
