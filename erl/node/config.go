package node

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid node config")

// Config describes one node incarnation.
type Config struct {
	// full node name, name@host
	Name string `yaml:"name"`
	// distribution cookie, kept for the handshake layer
	Cookie string `yaml:"cookie"`
	// incarnation counter; must change when the node restarts
	Creation uint32 `yaml:"creation"`
	// default capacity for process mailboxes, 0 for unbounded
	MailboxCapacity int `yaml:"mailbox_capacity"`
	// turns on erl debug logging
	Debug bool `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Name:     "py@127.0.0.1",
		Cookie:   "COOKIE",
		Creation: 1,
	}
}

func (c Config) Validate() error {
	local, host, ok := strings.Cut(c.Name, "@")
	if !ok || local == "" || host == "" {
		return fmt.Errorf("%w: name %q must look like name@host", ErrInvalidConfig, c.Name)
	}
	if c.MailboxCapacity < 0 {
		return fmt.Errorf("%w: mailbox_capacity %d is negative", ErrInvalidConfig, c.MailboxCapacity)
	}
	return nil
}

// ParseConfig reads YAML over [DefaultConfig], so omitted keys keep their
// defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse node config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read node config: %w", err)
	}
	return ParseConfig(data)
}
