package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvConfigPath     = "PMS_CONFIG"
	EnvAddress        = "PMS_ADDRESS"
	EnvWindow         = "PMS_WINDOW"
	EnvSampleInterval = "PMS_SAMPLE_INTERVAL"
	EnvLogLevel       = "PMS_LOG_LEVEL"
)

const (
	DefaultAddress          = "0.0.0.0:50051"
	DefaultWindow           = 2000 * time.Millisecond
	DefaultSampleInterval   = 300 * time.Millisecond
	DefaultDegradedResponse = "zero"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
	DefaultLogMaxSizeMB     = 100
	DefaultLogMaxBackups    = 3
)

// Config is the server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Collector CollectorConfig `yaml:"collector"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Address string `yaml:"address" validate:"required,listenaddr"`
}

type CollectorConfig struct {
	Window              time.Duration `yaml:"window" validate:"gt=0"`
	SampleInterval      time.Duration `yaml:"sample_interval" validate:"gt=0,ltfield=Window"`
	DegradedResponse    string        `yaml:"degraded_response" validate:"degraded"`
	FinishOnExit        bool          `yaml:"finish_on_exit"`
	TerminateOnComplete bool          `yaml:"terminate_on_complete"`
}

type LogConfig struct {
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"logformat"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Address: DefaultAddress},
		Collector: CollectorConfig{
			Window:           DefaultWindow,
			SampleInterval:   DefaultSampleInterval,
			DegradedResponse: DefaultDegradedResponse,
		},
		Log: LogConfig{
			Level:      DefaultLogLevel,
			Format:     DefaultLogFormat,
			MaxSizeMB:  DefaultLogMaxSizeMB,
			MaxBackups: DefaultLogMaxBackups,
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (or $PMS_CONFIG when
// path is empty) and environment overrides, and validates the result. A missing file is
// an error only when it was named explicitly.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvConfigPath)
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			if explicit || !errors.Is(err, fs.ErrNotExist) {
				return nil, err
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAddress); ok && v != "" {
		c.Server.Address = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}

	durations := []struct {
		env string
		dst *time.Duration
	}{
		{EnvWindow, &c.Collector.Window},
		{EnvSampleInterval, &c.Collector.SampleInterval},
	}
	for _, d := range durations {
		v, ok := lookup(d.env)
		if !ok || v == "" {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", d.env, err)
		}
		*d.dst = parsed
	}
	return nil
}
