// Package worldmt reads a world's world.mt settings file and resolves
// which mods it has enabled.
package worldmt

import (
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/logging"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// WorldFile is the name of the world settings file inside a world
// directory.
const WorldFile = "world.mt"

// loadModPrefix marks the keys that toggle individual mods.
const loadModPrefix = "load_mod_"

// EnabledMods is the set of mod names a world has enabled. It is built
// once per run and consulted read-only during traversal.
type EnabledMods struct {
	names map[string]struct{}
}

// Contains reports whether the named mod is enabled.
func (m *EnabledMods) Contains(name string) bool {
	_, ok := m.names[name]
	return ok
}

// Len returns the number of enabled mods.
func (m *EnabledMods) Len() int {
	return len(m.names)
}

// Load reads <worldDir>/world.mt and returns the set of mods whose
// load_mod_<name> key has the exact value "true". Any other value, or an
// absent key, means disabled. A missing or malformed file is fatal for
// the run.
func Load(fsys types.FS, worldDir string) (*EnabledMods, error) {
	logger := logging.GetLogger("worldmt")

	path := filepath.Join(worldDir, WorldFile)
	raw, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read world settings %s", path).
			WithDetail("world", worldDir)
	}

	cfg, err := ini.Load(raw)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "malformed world settings %s", path).
			WithDetail("world", worldDir)
	}

	names := make(map[string]struct{})
	for _, key := range cfg.Section(ini.DefaultSection).Keys() {
		if !strings.HasPrefix(key.Name(), loadModPrefix) || key.Value() != "true" {
			continue
		}
		names[strings.TrimPrefix(key.Name(), loadModPrefix)] = struct{}{}
	}

	logger.Debug().Str("world", worldDir).Int("enabled", len(names)).Msg("Resolved enabled mods")
	return &EnabledMods{names: names}, nil
}
