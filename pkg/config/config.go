package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rihla/rihla/pkg/core"
)

//go:embed config.toml.sample
var configTemplate string

// Config is the engine configuration loaded from TOML. Endpoint paths are
// resolved against BaseURL unless a source overrides them with an absolute
// URL.
type Config struct {
	BaseURL   string                `toml:"base_url"`
	Token     string                `toml:"token"`
	Admin     bool                  `toml:"admin"`
	Listen    string                `toml:"listen"`
	Debounce  Duration              `toml:"debounce"`
	ResultCap int                   `toml:"result_cap"`
	Sources   map[string]SourceInfo `toml:"sources"`
}

// SourceInfo overrides per-source defaults.
type SourceInfo struct {
	Endpoint string `toml:"endpoint,omitempty"`
	Disabled bool   `toml:"disabled,omitempty"`
}

type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// defaultEndpoints maps each collection kind to the path it is served from.
var defaultEndpoints = map[core.Kind]string{
	core.KindHotel:   "/api/hotels",
	core.KindTour:    "/api/tours",
	core.KindPackage: "/api/packages/featured",
	core.KindBlog:    "/api/blogs/published",
	core.KindCity:    "/api/cities",
	core.KindOffice:  "/api/offices",
	core.KindVoucher: "/api/vouchers",
	core.KindUser:    "/api/users",
}

func GetDefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://localhost:8000",
		Listen:    ":8787",
		Debounce:  Duration{200 * time.Millisecond},
		ResultCap: 20,
		Sources:   make(map[string]SourceInfo),
	}
}

func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return GetDefaultConfig(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	defaults := GetDefaultConfig()
	if config.BaseURL == "" {
		config.BaseURL = defaults.BaseURL
	}
	if config.Listen == "" {
		config.Listen = defaults.Listen
	}
	if config.Debounce.Duration == 0 {
		config.Debounce = defaults.Debounce
	}
	if config.ResultCap == 0 {
		config.ResultCap = defaults.ResultCap
	}
	if config.Sources == nil {
		config.Sources = make(map[string]SourceInfo)
	}

	return &config, nil
}

func (c *Config) SaveConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(configPath, data, 0644)
}

// SaveTemplateConfig writes the commented sample config so a new install has
// something to edit.
func (c *Config) SaveTemplateConfig(configPath string) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return os.WriteFile(configPath, []byte(configTemplate), 0644)
}

// SourceDisabled reports whether the kind was switched off in config.
func (c *Config) SourceDisabled(kind core.Kind) bool {
	info, exists := c.Sources[kind.String()]
	return exists && info.Disabled
}

// Settings resolves the fetch settings for a kind: endpoint URL, bearer
// token and role flag.
func (c *Config) Settings(kind core.Kind) core.SourceSettings {
	endpoint := defaultEndpoints[kind]
	if info, exists := c.Sources[kind.String()]; exists && info.Endpoint != "" {
		endpoint = info.Endpoint
	}
	if endpoint != "" && endpoint[0] == '/' {
		endpoint = c.BaseURL + endpoint
	}
	return core.SourceSettings{
		Endpoint: endpoint,
		Token:    c.Token,
		Admin:    c.Admin,
	}
}

// CitiesEndpoint returns the base URL of the per-country cities lookup used
// by the derived-city builder.
func (c *Config) CitiesEndpoint() string {
	return c.Settings(core.KindCity).Endpoint
}

// GetConfigDir returns the configuration directory, honoring XDG_CONFIG_HOME.
func GetConfigDir() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting user home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "rihla")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return dir, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}
