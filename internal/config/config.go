package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/kilua/internal/config/loader"
)

// Backend names.
const (
	BackendANSI  = "ansi"
	BackendTCell = "tcell"
)

// File names looked up in the home and working directories.
const (
	UserFile    = ".kilua.toml"
	ProjectFile = "kilua.toml"
)

// Duration is a time.Duration written as a Go duration string ("5s").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config holds every kilua setting.
type Config struct {
	TabStop        int      `toml:"tab_stop"`
	MessageTimeout Duration `toml:"message_timeout"`
	LogFile        string   `toml:"log_file"`
	LogLevel       string   `toml:"log_level"`
	Backend        string   `toml:"backend"`
	UndoLimit      int      `toml:"undo_limit"`
	Scripts        []string `toml:"scripts"`
	SyntaxFile     string   `toml:"syntax_file"`
	Watch          bool     `toml:"watch"`

	// Sources lists the files that contributed, lowest priority first.
	Sources []string `toml:"-"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		TabStop:        8,
		MessageTimeout: Duration(5 * time.Second),
		LogFile:        "~/.kilua.log",
		LogLevel:       "info",
		Backend:        BackendANSI,
		UndoLimit:      1000,
		Watch:          true,
	}
}

// Timeout returns MessageTimeout as a time.Duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.MessageTimeout)
}

// Validate checks every setting's range.
func (c *Config) Validate() error {
	switch {
	case c.TabStop < 1 || c.TabStop > 32:
		return &ValidationError{Key: "tab_stop", Value: c.TabStop, Message: "must be between 1 and 32"}
	case c.MessageTimeout <= 0:
		return &ValidationError{Key: "message_timeout", Value: c.Timeout(), Message: "must be positive"}
	case c.UndoLimit < 1:
		return &ValidationError{Key: "undo_limit", Value: c.UndoLimit, Message: "must be at least 1"}
	case c.Backend != BackendANSI && c.Backend != BackendTCell:
		return &ValidationError{Key: "backend", Value: c.Backend, Message: `must be "ansi" or "tcell"`}
	}
	return nil
}

type options struct {
	fs      loader.FileSystem
	home    string
	workDir string
	files   []string
	environ []string
	useEnv  bool
}

// Option configures Load.
type Option func(*options)

// WithFS reads files from fsys instead of the OS.
func WithFS(fsys loader.FileSystem) Option {
	return func(o *options) { o.fs = fsys }
}

// WithHomeDir sets the directory searched for .kilua.toml and used to expand
// "~/" in paths. An empty dir skips the user layer.
func WithHomeDir(dir string) Option {
	return func(o *options) { o.home = dir }
}

// WithWorkDir sets the directory searched for kilua.toml. An empty dir skips
// the project layer.
func WithWorkDir(dir string) Option {
	return func(o *options) { o.workDir = dir }
}

// WithFiles adds explicit config files on top of the user and project
// layers. Each file must exist.
func WithFiles(paths ...string) Option {
	return func(o *options) { o.files = append(o.files, paths...) }
}

// WithEnviron reads KILUA_* overrides from environ instead of the process
// environment. A nil environ disables the environment layer.
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
		o.useEnv = environ != nil
	}
}

// Load merges the configured sources over Default, validates the result and
// expands "~/" in path settings.
func Load(opts ...Option) (*Config, error) {
	o := options{fs: loader.DefaultFS(), useEnv: true}
	o.home, _ = os.UserHomeDir()
	o.workDir, _ = os.Getwd()
	for _, opt := range opts {
		opt(&o)
	}

	var sources []loader.Source
	if o.home != "" {
		sources = append(sources, tomlSource(o.fs, filepath.Join(o.home, UserFile)))
	}
	if o.workDir != "" {
		sources = append(sources, tomlSource(o.fs, filepath.Join(o.workDir, ProjectFile)))
	}
	for _, p := range o.files {
		p = expandHome(p, o.home)
		if _, err := o.fs.Stat(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, p)
			}
			return nil, err
		}
		sources = append(sources, tomlSource(o.fs, p))
	}
	if o.useEnv {
		env := loader.NewEnvLoader(loader.DefaultEnvPrefix)
		if o.environ != nil {
			env = loader.NewEnvLoaderFrom(loader.DefaultEnvPrefix, o.environ)
		}
		sources = append(sources, loader.Source{Loader: env})
	}

	merged, used, err := loader.Merge(sources...)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	cfg.Sources = used
	if err := decode(merged, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.LogFile = expandHome(cfg.LogFile, o.home)
	cfg.SyntaxFile = expandHome(cfg.SyntaxFile, o.home)
	for i, s := range cfg.Scripts {
		cfg.Scripts[i] = expandHome(s, o.home)
	}
	return cfg, nil
}

func tomlSource(fsys loader.FileSystem, path string) loader.Source {
	return loader.Source{Name: path, Loader: loader.NewTOMLLoaderWithFS(fsys, path)}
}

// decode overlays the merged map onto cfg. Keys absent from the map keep
// their current value.
func decode(merged map[string]any, cfg *Config) error {
	// A bare number of seconds is accepted for message_timeout.
	switch v := merged["message_timeout"].(type) {
	case int64:
		merged["message_timeout"] = (time.Duration(v) * time.Second).String()
	case float64:
		merged["message_timeout"] = time.Duration(v * float64(time.Second)).String()
	}

	data, err := toml.Marshal(merged)
	if err != nil {
		return fmt.Errorf("encoding merged config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return &loader.ParseError{Path: "<merged>", Message: err.Error(), Err: err}
	}
	return nil
}

func expandHome(path, home string) string {
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
