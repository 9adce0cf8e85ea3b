package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/thealper2/weissman-score-benchmark/pkg/types"
)

const (
	// Environment constants
	Production  = "production"
	Development = "development"

	defaultAlpha           = 1.0
	defaultReference       = "gzip"
	defaultLevel           = 6
	defaultTimeFloorMillis = 2.0
	defaultHistoryDir      = ".weissman/history"

	EnvConfigFile = "WEISSMAN_CONFIG_FILE"
)

// Config is the immutable runtime configuration. It is constructed once at
// startup and passed explicitly into the benchmark runner; nothing in the
// pipeline reads ambient state.
type Config struct {
	Environment string `mapstructure:"environment"`

	// Weissman score parameters
	Alpha     float64 `mapstructure:"alpha"`
	Reference string  `mapstructure:"reference"`

	// Compression level for codecs that accept one (gzip/zip/brotli scale)
	Level int `mapstructure:"level"`

	// Both the target and reference times are clamped to this floor (in
	// milliseconds) before taking logarithms, so sub-floor runs never divide
	// by a vanishing log. The floor materially changes scores for runs faster
	// than it.
	TimeFloorMillis float64 `mapstructure:"time_floor_ms"`

	// Run history storage
	HistoryEnabled bool   `mapstructure:"history_enabled"`
	HistoryDir     string `mapstructure:"history_dir"`
}

func initConfig() error {
	// env
	viper.SetEnvPrefix("WEISSMAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("environment", Development)
	viper.SetDefault("alpha", defaultAlpha)
	viper.SetDefault("reference", defaultReference)
	viper.SetDefault("level", defaultLevel)
	viper.SetDefault("time_floor_ms", defaultTimeFloorMillis)
	viper.SetDefault("history_enabled", true)
	viper.SetDefault("history_dir", defaultHistoryDir)

	// set env config file
	configFile := os.Getenv(EnvConfigFile)
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName("weissman")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.weissman/")
	}

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; only an explicitly named one must exist.
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && configFile == "" {
			return nil
		}
		return fmt.Errorf("viper read config: %w", err)
	}

	return nil
}

// SetEnvConfigPath points the loader at an explicit config file.
func SetEnvConfigPath(configPath string) {
	if configPath != "" {
		os.Setenv(EnvConfigFile, configPath)
	}
}

// LoadConfig decodes the current viper state into a Config and validates it.
func LoadConfig() (*Config, error) {
	var cfg Config
	decoderConfig := &mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	}

	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return nil, fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Load reads configuration from file and environment and returns it.
func Load() (*Config, error) {
	if err := initConfig(); err != nil {
		return nil, err
	}
	return LoadConfig()
}

// Default returns a validated configuration without consulting files or the
// environment. Used by tests and as the baseline for flag overrides.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Validate rejects configurations the pipeline cannot run with.
func Validate(cfg *Config) error {
	if err := validateEnvironment(cfg.Environment); err != nil {
		return fmt.Errorf("%w: %s", types.ErrInvalidConfig, err)
	}
	if cfg.Alpha <= 0 {
		return fmt.Errorf("%w: alpha must be positive, got %g", types.ErrInvalidConfig, cfg.Alpha)
	}
	if cfg.Reference == "" {
		return fmt.Errorf("%w: reference algorithm must be set", types.ErrInvalidConfig)
	}
	if cfg.TimeFloorMillis <= 1 {
		return fmt.Errorf("%w: time_floor_ms must be greater than 1, got %g", types.ErrInvalidConfig, cfg.TimeFloorMillis)
	}
	return nil
}

func validateEnvironment(environment string) error {
	validEnvironments := []string{Production, Development}

	if !slices.Contains(validEnvironments, environment) {
		return fmt.Errorf("invalid environment '%s'. Must be one of: %s", environment, strings.Join(validEnvironments, ", "))
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Environment == "" {
		cfg.Environment = Development
	}
	if cfg.Alpha == 0 {
		cfg.Alpha = defaultAlpha
	}
	if cfg.Reference == "" {
		cfg.Reference = defaultReference
	}
	if cfg.Level == 0 {
		cfg.Level = defaultLevel
	}
	if cfg.TimeFloorMillis == 0 {
		cfg.TimeFloorMillis = defaultTimeFloorMillis
	}
	if cfg.HistoryDir == "" {
		cfg.HistoryDir = defaultHistoryDir
	}
}
