// Package config provides the server configuration.
package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"
	"github.com/tkuutti/screenshot-mcp/pkg/imaging"
)

const (
	// DefaultServiceName is advertised to MCP clients on initialize
	DefaultServiceName = "screenshot-server"
)

// Config is the server configuration
type Config struct {
	// ServiceName is the server name reported to clients
	ServiceName string `json:"service_name" yaml:"service_name" validate:"required"`

	Logs    Logs    `json:"logs" yaml:"logs"`
	Capture Capture `json:"capture" yaml:"capture"`
	Output  Output  `json:"output" yaml:"output"`
}

// Logs specifies the logger settings.
// Logs are always written to stderr.
type Logs struct {
	// Level is one of trace|debug|info|notice|warning|error|critical
	Level string `json:"level,omitempty" yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info notice warning error critical"`
	// Format is text or json
	Format string `json:"format,omitempty" yaml:"format,omitempty" validate:"omitempty,oneof=text json"`
}

// Capture specifies what a full screen capture covers
type Capture struct {
	AllDisplays bool `json:"all_displays,omitempty" yaml:"all_displays,omitempty"`
	Display     int  `json:"display,omitempty" yaml:"display,omitempty" validate:"min=0"`
}

// Output specifies how images are written
type Output struct {
	JPEGQuality int `json:"jpeg_quality,omitempty" yaml:"jpeg_quality,omitempty" validate:"omitempty,min=1,max=100"`
	// DirPerm is the octal permission of created directories, 0755 by default
	DirPerm string `json:"dir_perm,omitempty" yaml:"dir_perm,omitempty"`
}

// Default returns the configuration used without a config file
func Default() *Config {
	cfg := new(Config)
	cfg.SetDefaults()
	return cfg
}

// SetDefaults fills the unset values
func (c *Config) SetDefaults() {
	c.ServiceName = values.StringsCoalesce(c.ServiceName, DefaultServiceName)
	c.Logs.Level = values.StringsCoalesce(c.Logs.Level, "info")
	c.Logs.Format = values.StringsCoalesce(c.Logs.Format, "text")
	c.Output.JPEGQuality = values.NumbersCoalesce(c.Output.JPEGQuality, imaging.DefaultJPEGQuality)
}

// Validate returns an error if the configuration is not valid
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	if _, err := c.Output.DirMode(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}

// DirMode returns the permission of created directories
func (o Output) DirMode() (os.FileMode, error) {
	if o.DirPerm == "" {
		return imaging.DefaultDirPerm, nil
	}
	v, err := strconv.ParseUint(o.DirPerm, 8, 32)
	if err != nil || v == 0 || v > 0o777 {
		return 0, errors.Newf("dir_perm: invalid octal permission %q", o.DirPerm)
	}
	return os.FileMode(v), nil
}

// CaptureOptions returns the screen backend options
func (c *Config) CaptureOptions() imaging.CaptureOptions {
	return imaging.CaptureOptions{
		AllDisplays: c.Capture.AllDisplays,
		Display:     c.Capture.Display,
	}
}

// OutputOptions returns the image writer options
func (c *Config) OutputOptions() imaging.OutputOptions {
	perm, _ := c.Output.DirMode()
	return imaging.OutputOptions{
		JPEGQuality: c.Output.JPEGQuality,
		DirPerm:     perm,
	}
}

// Load returns the configuration from file with defaults applied.
// Environment variables in the file are expanded.
func Load(file string) (*Config, error) {
	cfg := new(Config)
	if file != "" {
		if err := configloader.UnmarshalAndExpand(file, cfg); err != nil {
			return nil, errors.Wrapf(err, "failed to load config %s", file)
		}
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
