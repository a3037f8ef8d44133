package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vastitch/vastitch/pkg/fetch"
	"github.com/vastitch/vastitch/pkg/resolve"
)

// DefaultConfigFile is looked up in the working directory when no config
// path is given.
const DefaultConfigFile = ".vastitch.yaml"

// Duration wraps time.Duration so config files can say "3s" or "500ms".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config is the file-level configuration recognized by the tool. Zero
// values mean "use the built-in default"; CLI flags override both.
type Config struct {
	MaxDepth     int      `yaml:"max_depth"`
	FetchTimeout Duration `yaml:"fetch_timeout"`
	BaseDir      string   `yaml:"base_dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		MaxDepth:     resolve.DefaultMaxDepth,
		FetchTimeout: Duration(fetch.DefaultTimeout),
	}
}

// LoadConfig reads a YAML config file. A missing file at the default path
// is not an error; an explicitly named file must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = resolve.DefaultMaxDepth
	}
	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = Duration(fetch.DefaultTimeout)
	}
	return cfg, nil
}

// Options converts the config into client options.
func (c Config) Options() []Option {
	return []Option{
		WithMaxDepth(c.MaxDepth),
		WithFetchTimeout(time.Duration(c.FetchTimeout)),
		WithBaseDir(c.BaseDir),
	}
}
