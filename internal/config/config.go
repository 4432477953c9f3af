package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging  Logging  `yaml:"logging"`
	Scryfall Scryfall `yaml:"scryfall"`
	HTTP     HTTP     `yaml:"http"`
}

type Logging struct {
	Level string `yaml:"level"`
}

func (l Logging) LevelOrDefault() string {
	level := strings.TrimSpace(l.Level)
	if level == "" {
		level = "INFO"
	}

	return strings.ToLower(level)
}

type Scryfall struct {
	BaseURL string `yaml:"baseUrl"`
}

// EnsureBaseURL resolves the given url against the configured base url.
// A url that already carries a scheme is returned unchanged.
func (s Scryfall) EnsureBaseURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid url %s %w", rawURL, err)
	}
	if u.Scheme != "" {
		return rawURL, nil
	}

	base, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base url %s %w", s.BaseURL, err)
	}

	return base.ResolveReference(u).String(), nil
}

type HTTP struct {
	Timeout time.Duration `yaml:"timeout"`
}

func (h HTTP) TimeoutOrDefault() time.Duration {
	if h.Timeout <= 0 {
		return 10 * time.Second
	}

	return h.Timeout
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Scryfall: Scryfall{BaseURL: "https://api.scryfall.com"},
	}
}

func Load(path string) (*Config, error) {
	s, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if s.IsDir() {
		return nil, fmt.Errorf("'%s' is a directory, not a regular file", path)
	}

	return buildConfig(path)
}

func buildConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read config file: %w", err)
	}

	config := Default()

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("config unmarshal failed with: %w", err)
	}

	return config, nil
}
