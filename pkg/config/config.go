// Package config loads tool configuration: embedded defaults, then an
// optional mediastore.toml from the XDG config directory, then one from
// the working directory. Command-line flags override everything here.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/logging"
)

// FileName is the config file looked up in the XDG config dir and the
// working directory.
const FileName = "mediastore.toml"

// Config holds the tool settings a user can persist instead of passing
// flags on every run.
type Config struct {
	// PlaceMode is the default placement strategy: none, copy,
	// hardlink or symlink.
	PlaceMode string `koanf:"place_mode" toml:"place_mode"`

	// HashWorkers bounds concurrent file hashing. Zero means one per
	// CPU.
	HashWorkers int `koanf:"hash_workers" toml:"hash_workers"`

	// NoColor disables styled terminal output.
	NoColor bool `koanf:"no_color" toml:"no_color"`
}

const defaultConfig = `# mediastore defaults
place_mode = "none"
hash_workers = 0
no_color = false
`

// Load merges defaults with any config files found.
func Load() (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultConfig)), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default config")
	}

	paths := []string{
		filepath.Join(xdg.ConfigHome, "mediastore", FileName),
		FileName,
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// Generate renders a commented default config file, used by the
// genconfig command.
func Generate() ([]byte, error) {
	cfg := Config{
		PlaceMode:   "none",
		HashWorkers: 0,
		NoColor:     false,
	}
	out, err := gotoml.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal default config")
	}
	header := []byte("# mediastore configuration\n# Flags override these settings.\n\n")
	return append(header, out...), nil
}
