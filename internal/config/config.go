package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"diningres/internal/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the console looks for its configuration file.
const DefaultPath = "configs/config.yaml"

type Config struct {
	App     AppConfig      `yaml:"app"`
	Logging LoggingConfig  `yaml:"logging"`
	Menu    MenuConfig     `yaml:"menu"`
	Pricing models.Pricing `yaml:"pricing"`
	Exports ExportConfig   `yaml:"exports"`
	Metrics MetricsConfig  `yaml:"metrics"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`
	Format   string `yaml:"format"`
	Output   string `yaml:"output"`
	FilePath string `yaml:"file_path"`
}

// MenuConfig holds the single-letter command for each menu action.
type MenuConfig struct {
	View   string `yaml:"view"`
	Make   string `yaml:"make"`
	Delete string `yaml:"delete"`
	Report string `yaml:"report"`
	Exit   string `yaml:"exit"`
}

type ExportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type MetricsConfig struct {
	Enabled *bool `yaml:"enabled"`
}

func (m MetricsConfig) IsEnabled() bool {
	return m.Enabled == nil || *m.Enabled
}

// Load reads the YAML file at configPath. A missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	// .env необязателен
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	var config Config

	data, err := os.ReadFile(configPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		// Предварительная замена переменных окружения в YAML
		expandedData := []byte(os.ExpandEnv(string(data)))
		if err := yaml.Unmarshal(expandedData, &config); err != nil {
			return nil, err
		}
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Menu.Validate(); err != nil {
		return err
	}

	if c.Pricing.AdultRate < 0 || c.Pricing.ChildRate < 0 {
		return errors.New("pricing rates must not be negative")
	}
	if strings.TrimSpace(c.Pricing.Currency) == "" {
		return errors.New("pricing currency is required")
	}

	if c.Exports.Enabled && strings.TrimSpace(c.Exports.Path) == "" {
		return errors.New("exports.enabled requires exports.path")
	}

	return nil
}

// Validate checks that every command is one character and no two collide.
func (m MenuConfig) Validate() error {
	seen := make(map[string]string)
	for _, entry := range []struct{ name, key string }{
		{"view", m.View},
		{"make", m.Make},
		{"delete", m.Delete},
		{"report", m.Report},
		{"exit", m.Exit},
	} {
		key := strings.ToLower(strings.TrimSpace(entry.key))
		if len([]rune(key)) != 1 {
			return fmt.Errorf("menu.%s must be a single character, got %q", entry.name, entry.key)
		}
		if other, ok := seen[key]; ok {
			return fmt.Errorf("menu.%s and menu.%s share the key %q", other, entry.name, key)
		}
		seen[key] = entry.name
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App.Name == "" {
		c.App.Name = "diningres"
	}
	if c.App.Environment == "" {
		c.App.Environment = "local"
	}

	// Логи не должны смешиваться с выводом меню на stdout
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	if c.Menu.View == "" {
		c.Menu.View = models.DefaultViewKey
	}
	if c.Menu.Make == "" {
		c.Menu.Make = models.DefaultMakeKey
	}
	if c.Menu.Delete == "" {
		c.Menu.Delete = models.DefaultDeleteKey
	}
	if c.Menu.Report == "" {
		c.Menu.Report = models.DefaultReportKey
	}
	if c.Menu.Exit == "" {
		c.Menu.Exit = models.DefaultExitKey
	}

	if c.Pricing.AdultRate == 0 {
		c.Pricing.AdultRate = models.DefaultAdultRate
	}
	if c.Pricing.ChildRate == 0 {
		c.Pricing.ChildRate = models.DefaultChildRate
	}
	if c.Pricing.Currency == "" {
		c.Pricing.Currency = models.DefaultCurrency
	}

	if c.Exports.Path == "" {
		c.Exports.Path = models.DefaultExportPath
	}
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}
