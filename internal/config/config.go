package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds settings shared by the alarm binaries.
type Config struct {
	// ServerAddress is the gRPC address of the alarm daemon.
	ServerAddress string `yaml:"server_addr"`
	// Timeout is the duration for network operations and RPC calls.
	Timeout time.Duration `yaml:"timeout"`
	// PollInterval is how often alarms are checked against the clock.
	PollInterval time.Duration `yaml:"poll_interval"`
	// LogLevel is the minimum zap level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
	// LogFile redirects logs to a file; the terminal UI always needs one.
	LogFile string `yaml:"log_file"`
	// Notifiers lists the notifier kinds invoked when an alarm rings.
	Notifiers []string `yaml:"notifiers"`
	// Tone configures the generated alarm tone.
	Tone ToneConfig `yaml:"tone"`
}

// ToneConfig configures the audible tone notifier.
type ToneConfig struct {
	// FrequencyHz is the pitch of the beep.
	FrequencyHz float64 `yaml:"frequency_hz"`
	// Volume scales the amplitude, from 0 to 1.
	Volume float64 `yaml:"volume"`
}

// Notifier kinds accepted in Config.Notifiers.
const (
	NotifierLog  = "log"
	NotifierBell = "bell"
	NotifierTone = "tone"
)

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "alarm-clock-settings.yaml"

	// DefaultServerAddress is used when no address is configured.
	DefaultServerAddress = "127.0.0.1:50151"

	// DefaultTimeout is the default duration for network operations.
	DefaultTimeout = 5 * time.Second

	// DefaultPollInterval is the default alarm check interval.
	DefaultPollInterval = time.Second

	// MaxPollInterval bounds how late an alarm may be detected.
	MaxPollInterval = time.Second

	// DefaultLogLevel is the default zap level name.
	DefaultLogLevel = "info"

	// DefaultToneFrequency is the default beep pitch (A5).
	DefaultToneFrequency = 880

	// DefaultToneVolume is the default beep amplitude.
	DefaultToneVolume = 0.3

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errPollIntervalTooLong is returned when alarms could be detected late.
	errPollIntervalTooLong = errors.New("poll interval must not exceed one second")
	// errUnknownNotifier is returned for notifier kinds that do not exist.
	errUnknownNotifier = errors.New("unknown notifier")
	// errInvalidVolume is returned when the tone volume is out of range.
	errInvalidVolume = errors.New("tone volume must be between 0 and 1")
	// errInvalidLogLevel is returned for unrecognized level names.
	errInvalidLogLevel = errors.New("unknown log level")
)

// knownLogLevels lists the level names accepted in LogLevel.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns settings suitable for a local, single-machine setup.
func Default() *Config {
	cfg := new(Config)

	// Defaults never fail validation.
	_ = Validate(cfg)

	return cfg
}

// Load reads configuration from the provided path and validates essential fields.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	return cfg, err
}

// Save writes settings to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills in defaults for empty fields.
//
//nolint:cyclop // A flat list of field checks reads better than helpers.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.ServerAddress == "" {
		settings.ServerAddress = DefaultServerAddress
	}

	if _, err := net.ResolveTCPAddr("tcp", settings.ServerAddress); err != nil {
		return fmt.Errorf("invalid server socket: %w", err)
	}

	if settings.Timeout <= 0 {
		settings.Timeout = DefaultTimeout
	}

	if settings.PollInterval <= 0 {
		settings.PollInterval = DefaultPollInterval
	}

	if settings.PollInterval > MaxPollInterval {
		return fmt.Errorf("%w: %s", errPollIntervalTooLong, settings.PollInterval)
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if !slices.Contains(knownLogLevels, settings.LogLevel) {
		return fmt.Errorf("%w: %q", errInvalidLogLevel, settings.LogLevel)
	}

	if len(settings.Notifiers) == 0 {
		settings.Notifiers = []string{NotifierLog}
	}

	for _, kind := range settings.Notifiers {
		switch kind {
		case NotifierLog, NotifierBell, NotifierTone:
		default:
			return fmt.Errorf("%w: %q", errUnknownNotifier, kind)
		}
	}

	if settings.Tone.FrequencyHz <= 0 {
		settings.Tone.FrequencyHz = DefaultToneFrequency
	}

	if settings.Tone.Volume == 0 {
		settings.Tone.Volume = DefaultToneVolume
	}

	if settings.Tone.Volume < 0 || settings.Tone.Volume > 1 {
		return errInvalidVolume
	}

	return nil
}
