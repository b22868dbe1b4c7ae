package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all converter settings. Values are layered: defaults, then an
// optional TOML file, then environment variables, then command-line arguments.
type Config struct {
	Directory   string `toml:"directory"`
	OutFile     string `toml:"out_file"`
	StationList string `toml:"station_list"`
	PhaseWeight string `toml:"phase_weight"`

	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	MetricsFile string `toml:"metrics_file"`

	Kafka Kafka `toml:"kafka"`
}

// Kafka configures the optional event publisher.
type Kafka struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
}

// Default returns a Config populated with built-in defaults.
func Default() Config {
	return Config{
		PhaseWeight: "P0",
		LogLevel:    "info",
		LogFormat:   "text",
		Kafka: Kafka{
			Topic: "obs-cnv-events",
		},
	}
}

// Load builds a Config from defaults, the TOML file at path (if path is not
// empty), and the environment. A .env file in the working directory is honoured.
// Load does not validate; callers apply command-line overrides first and then
// call Validate.
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	return &cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Directory = sharedcfg.EnvOrDefault("SHOTS2CNV_DIR", cfg.Directory)
	cfg.OutFile = sharedcfg.EnvOrDefault("SHOTS2CNV_OUT", cfg.OutFile)
	cfg.StationList = sharedcfg.EnvOrDefault("SHOTS2CNV_STATIONS", cfg.StationList)
	cfg.PhaseWeight = sharedcfg.EnvOrDefault("SHOTS2CNV_PHASE_WEIGHT", cfg.PhaseWeight)
	cfg.LogLevel = sharedcfg.EnvOrDefault("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = sharedcfg.EnvOrDefault("LOG_FORMAT", cfg.LogFormat)
	cfg.MetricsFile = sharedcfg.EnvOrDefault("METRICS_FILE", cfg.MetricsFile)
	cfg.Kafka.Topic = sharedcfg.EnvOrDefault("KAFKA_TOPIC", cfg.Kafka.Topic)

	// Brokers in the environment imply publishing unless explicitly disabled.
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = sharedcfg.ParseBrokers(v)
		cfg.Kafka.Enabled = len(cfg.Kafka.Brokers) > 0
	}
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		cfg.Kafka.Enabled = v == "true"
	}
}

// Validate reports the first setting that would prevent a conversion run.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Directory) == "" {
		return errors.New("shot directory is required")
	}
	if strings.TrimSpace(c.OutFile) == "" {
		return errors.New("output file is required")
	}
	if strings.TrimSpace(c.StationList) == "" {
		return errors.New("station list is required")
	}
	if n := utf8.RuneCountInString(c.PhaseWeight); n == 0 || n > 2 {
		return fmt.Errorf("phase weight %q must be 1 or 2 characters", c.PhaseWeight)
	}
	if err := c.ValidateLogging(); err != nil {
		return err
	}
	if c.Kafka.Enabled {
		if len(c.Kafka.Brokers) == 0 {
			return errors.New("kafka publishing is enabled but KAFKA_BROKERS is not set")
		}
		if strings.TrimSpace(c.Kafka.Topic) == "" {
			return errors.New("KAFKA_TOPIC is required when kafka publishing is enabled")
		}
	}
	return nil
}

// ValidateLogging checks only the logging settings, for commands that do not convert.
func (c *Config) ValidateLogging() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid LOG_LEVEL %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("invalid LOG_FORMAT %q", c.LogFormat)
	}
	return nil
}
