package o2sched

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the file form of Options.
type Config struct {
	SlotNum        int           `yaml:"slot_num,omitempty"`
	PollInterval   time.Duration `yaml:"poll_interval,omitempty"`
	MessageSize    int           `yaml:"message_size,omitempty"`
	MaxMessages    int           `yaml:"max_messages,omitempty"`
	MaxMessageSize int           `yaml:"max_message_size,omitempty"`
	Verbose        bool          `yaml:"verbose,omitempty"`
}

// LoadConfig reads a YAML config from fs.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the options would otherwise silently ignore.
func (c Config) Validate() error {
	if c.SlotNum != 0 && (c.SlotNum < defaultSlotNum || c.SlotNum&(c.SlotNum-1) != 0) {
		return fmt.Errorf("slot_num %d must be a power of two >= %d: %w", c.SlotNum, defaultSlotNum, ErrInvalidConfig)
	}
	if c.PollInterval < 0 {
		return fmt.Errorf("poll_interval %v is negative: %w", c.PollInterval, ErrInvalidConfig)
	}
	if c.MessageSize < 0 || c.MaxMessages < 0 || c.MaxMessageSize < 0 {
		return fmt.Errorf("sizes must not be negative: %w", ErrInvalidConfig)
	}
	if c.MaxMessageSize > 0 && c.MessageSize > c.MaxMessageSize {
		return fmt.Errorf("message_size %d exceeds max_message_size %d: %w", c.MessageSize, c.MaxMessageSize, ErrInvalidConfig)
	}
	return nil
}

// Options converts c to coordinator options. Verbose logs through Printf.
func (c Config) Options() []Option {
	opts := []Option{
		WithSlotNum(c.SlotNum),
		WithPollInterval(c.PollInterval),
		WithMessageSize(c.MessageSize),
		WithMaxMessages(c.MaxMessages),
		WithMaxMessageSize(c.MaxMessageSize),
	}
	if c.Verbose {
		opts = append(opts, WithLogger(Printf))
	}
	return opts
}
