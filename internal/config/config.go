// Package config loads render-icon settings from the environment and
// command-line flags. Flags default to the environment and override it.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rook-computer/appicon/internal/fonts"
	"github.com/rook-computer/appicon/internal/render"
)

// Config holds one run's settings.
type Config struct {
	Output     string `env:"APPICON_OUTPUT"      envDefault:"src-tauri/app-icon.png"`
	Letter     string `env:"APPICON_LETTER"      envDefault:"S"`
	Size       int    `env:"APPICON_SIZE"        envDefault:"1024"`
	Font       string `env:"APPICON_FONT"        envDefault:"arial.ttf"`
	FontEngine string `env:"APPICON_FONT_ENGINE" envDefault:"opentype"`
	// FontDirs is an OS path list (":" on unix, ";" on windows). Empty means
	// the system font directories.
	FontDirs   string `env:"APPICON_FONT_DIRS"`

	Framebuffer string        `env:"APPICON_FB"`
	Hold        time.Duration `env:"APPICON_HOLD" envDefault:"5s"`

	Debug    bool   `env:"APPICON_DEBUG"`
	LogFile  string `env:"APPICON_LOG_FILE"`
	StdioLog string `env:"APPICON_STDIO_LOG"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then args, and validates the result.
// A -h/-help flag returns flag.ErrHelp.
func Load(args []string, usage io.Writer) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("render-icon", flag.ContinueOnError)
	fs.SetOutput(usage)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	cfg.Output = filepath.Clean(cfg.Output)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RegisterFlags binds flags to c, using c's current values as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Output, "output", c.Output, "output image path; the extension picks the format (png, jpg, bmp, tiff); also APPICON_OUTPUT")
	fs.StringVar(&c.Letter, "letter", c.Letter, "single character drawn on the icon; also APPICON_LETTER")
	fs.IntVar(&c.Size, "size", c.Size, "canvas width and height in pixels; also APPICON_SIZE")
	fs.StringVar(&c.Font, "font", c.Font, "font file path or name searched in the font directories; also APPICON_FONT")
	fs.StringVar(&c.FontEngine, "font-engine", c.FontEngine, "font engine: opentype | freetype; also APPICON_FONT_ENGINE")
	fs.StringVar(&c.FontDirs, "font-dirs", c.FontDirs, "path list of directories searched for -font (default: system font directories); also APPICON_FONT_DIRS")
	fs.StringVar(&c.Framebuffer, "fb", c.Framebuffer, "show the icon on this framebuffer device after saving, e.g. /dev/fb0 (linux); also APPICON_FB")
	fs.DurationVar(&c.Hold, "hold", c.Hold, "how long the framebuffer preview stays up; 0 waits for Esc/Q/F4 or a signal; also APPICON_HOLD")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging to stderr or -log-file; also APPICON_DEBUG")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "append debug log lines to this file instead of stderr; also APPICON_LOG_FILE")
	fs.StringVar(&c.StdioLog, "stdio-log", c.StdioLog, "redirect stdout+stderr (including panics) to this file; also APPICON_STDIO_LOG")
}

// Validate checks the settings that do not depend on the filesystem.
func (c Config) Validate() error {
	var errs []error
	if c.Output == "" || c.Output == "." {
		errs = append(errs, errors.New("output path is empty"))
	} else if _, err := render.FormatFromPath(c.Output); err != nil {
		errs = append(errs, err)
	}
	if err := render.ValidateLetter(c.Letter); err != nil {
		errs = append(errs, err)
	}
	if err := render.ScaledGeometry(c.Size).Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := fonts.ParseEngine(c.FontEngine); err != nil {
		errs = append(errs, err)
	}
	if c.Hold < 0 {
		errs = append(errs, fmt.Errorf("hold must not be negative, got %s", c.Hold))
	}
	return errors.Join(errs...)
}

// SearchDirs splits FontDirs; nil means the system font directories.
func (c Config) SearchDirs() []string {
	if c.FontDirs == "" {
		return nil
	}
	return filepath.SplitList(c.FontDirs)
}
