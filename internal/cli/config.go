package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"runtime"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"

	"github.com/reoring/swagdoc"
	"github.com/reoring/swagdoc/bundle"
	"github.com/reoring/swagdoc/emit"
)

// DefaultConfigFile is read from the working directory when present.
const DefaultConfigFile = "swagdoc.yml"

// Config drives every subcommand. Values come from built-in defaults, then
// the config file, then explicitly set flags.
type Config struct {
	Path     string        `koanf:"path"`
	ReadExt  string        `koanf:"readExtension"`
	WriteExt string        `koanf:"writeExtension"`
	Regex    string        `koanf:"regex"`
	Format   string        `koanf:"format"`
	Profile  string        `koanf:"profile"`
	Workers  int           `koanf:"workers"`
	MaxDepth int           `koanf:"maxDepth"`
	Debounce time.Duration `koanf:"debounce"`
	Bundle   BundleConfig  `koanf:"bundle"`
}

// BundleConfig configures the bundle subcommand.
type BundleConfig struct {
	Output string      `koanf:"output"`
	Info   bundle.Info `koanf:"info"`
}

// Defaults returns the built-in configuration.
func Defaults() map[string]any {
	return map[string]any{
		"path":                "dist",
		"readExtension":       ".doc.json",
		"writeExtension":      ".doc.js",
		"regex":               "",
		"format":              string(emit.FormatJSDoc),
		"profile":             swagdoc.ProfileShorthand.String(),
		"workers":             runtime.NumCPU(),
		"maxDepth":            256,
		"debounce":            "200ms",
		"bundle.output":       "openapi.yaml",
		"bundle.info.title":   "API",
		"bundle.info.version": "1.0.0",
	}
}

// LoadConfig merges defaults, the YAML file at path and overrides. A missing
// file is only an error when required is set.
func LoadConfig(path string, required bool, overrides map[string]any) (Config, error) {
	var cfg Config
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return cfg, fmt.Errorf("loading defaults: %w", err)
	}
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("loading config %s: %w", path, err)
			}
		} else if required || !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading config %s: %w", path, err)
		}
	}
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return cfg, fmt.Errorf("loading flags: %w", err)
		}
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks values that flags and files cannot constrain by type.
func (c Config) Validate() error {
	if c.ReadExt == "" {
		return errors.New("config: readExtension must not be empty")
	}
	if c.WriteExt == "" {
		return errors.New("config: writeExtension must not be empty")
	}
	if c.ReadExt == c.WriteExt {
		return fmt.Errorf("config: readExtension and writeExtension are both %q; outputs would overwrite inputs", c.ReadExt)
	}
	if _, err := emit.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, ok := swagdoc.ParseProfile(c.Profile); !ok {
		return fmt.Errorf("config: unknown profile %q (want shorthand or openapi3)", c.Profile)
	}
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be at least 1, got %d", c.Workers)
	}
	if c.Regex != "" {
		if _, err := regexp.Compile(c.Regex); err != nil {
			return fmt.Errorf("config: regex: %w", err)
		}
	}
	return nil
}

// FormatValue returns the parsed output format.
func (c Config) FormatValue() emit.Format {
	f, _ := emit.ParseFormat(c.Format)
	return f
}

// ProfileValue returns the parsed conversion profile.
func (c Config) ProfileValue() swagdoc.Profile {
	p, _ := swagdoc.ParseProfile(c.Profile)
	return p
}

// Pattern returns the compiled file filter, or nil when none is set.
func (c Config) Pattern() *regexp.Regexp {
	if c.Regex == "" {
		return nil
	}
	return regexp.MustCompile(c.Regex)
}

// ParseOpt returns the document decoding options.
func (c Config) ParseOpt() swagdoc.ParseOpt {
	return swagdoc.ParseOpt{MaxDepth: c.MaxDepth}
}
