package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/sessilelab/dropletgen/pkg/errors"
	"github.com/sessilelab/dropletgen/pkg/pipeline"
)

// Config is the TOML configuration loaded from
// ~/.config/dropletgen/config.toml. All sections are optional; a missing
// file yields the zero Config and pipeline defaults apply.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	Cache    CacheConfig    `toml:"cache"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Server   ServerConfig   `toml:"server"`
}

// DefaultsConfig overrides the built-in generation defaults.
type DefaultsConfig struct {
	Width        int     `toml:"width"`
	Height       int     `toml:"height"`
	Radius       float64 `toml:"radius"`
	BaselineFrac float64 `toml:"baseline_frac"`
	Harmonics    int     `toml:"harmonics"`
	Amplitude    float64 `toml:"amplitude"`
	Sigma        float64 `toml:"sigma"`
	NoiseStdDev  float64 `toml:"noise_stddev"`
}

// CacheConfig selects the artifact cache backend.
type CacheConfig struct {
	Disabled      bool   `toml:"disabled"`
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// CatalogConfig selects the default catalog backend.
type CatalogConfig struct {
	Path     string `toml:"path"`
	MongoURI string `toml:"mongo_uri"`
}

// ServerConfig holds front-end settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// LoadConfig reads a TOML config. An empty path means the default
// location; a missing file at the default location is not an error.
func LoadConfig(path string) (Config, error) {
	explicit := path != ""
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return Config{}, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return Config{}, nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeConfiguration, err, "load config %s", path)
	}
	return cfg, nil
}

// Apply copies configured defaults into options the caller left unset.
// Flag values win over config values, which win over built-in defaults.
func (c Config) Apply(opts *pipeline.Options) {
	d := c.Defaults
	if opts.Width == 0 {
		opts.Width = d.Width
	}
	if opts.Height == 0 {
		opts.Height = d.Height
	}
	if opts.Radius == 0 {
		opts.Radius = d.Radius
	}
	if opts.BaselineFrac == 0 {
		opts.BaselineFrac = d.BaselineFrac
	}
	if opts.Harmonics == 0 {
		opts.Harmonics = d.Harmonics
	}
	if opts.Amplitude == 0 {
		opts.Amplitude = d.Amplitude
	}
	if opts.Sigma == 0 {
		opts.Sigma = d.Sigma
	}
	if opts.NoiseStdDev == 0 {
		opts.NoiseStdDev = d.NoiseStdDev
	}
}
