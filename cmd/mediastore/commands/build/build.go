package build

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mtcontrib/mediastore/pkg/config"
	"github.com/mtcontrib/mediastore/pkg/core"
	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/output"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// NewCommand creates the build command
func NewCommand() *cobra.Command {
	var (
		worldPath string
		gamePath  string
		outPath   string
		indexPath string
		mediaDir  string
		doCopy    bool
		hardlink  bool
		symlink   bool
		workers   int
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:     "build [extra-mod-paths...]",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			mode, err := resolveMode(doCopy, hardlink, symlink, cfg.PlaceMode)
			if err != nil {
				return err
			}
			if workers == 0 {
				workers = cfg.HashWorkers
			}

			opts := core.BuildOptions{
				WorldPath:   worldPath,
				GamePath:    gamePath,
				ExtraPaths:  args,
				Mode:        mode,
				HashWorkers: workers,
			}
			if outPath != "" {
				opts.MediaDir = outPath
			} else {
				opts.MediaDir = mediaDir
				opts.IndexPath = indexPath
			}

			if err := validatePaths(&opts); err != nil {
				return err
			}

			result, runErr := core.Run(opts)
			if result != nil {
				plain := noColor || cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
				output.NewRenderer(cmd.OutOrStdout(), plain).Summary(result, mode)
			}
			return runErr
		},
	}

	cmd.Flags().StringVarP(&worldPath, "world", "w", "", "Path to the world directory")
	cmd.Flags().StringVarP(&gamePath, "game", "g", "", "Path to the game directory")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output directory for both manifest and media")
	cmd.Flags().StringVar(&indexPath, "index", "", "Manifest path (with --media-dir instead of --out)")
	cmd.Flags().StringVar(&mediaDir, "media-dir", "", "Media store directory (with --index instead of --out)")
	cmd.Flags().BoolVarP(&doCopy, "copy", "c", false, "Copy assets to the output folder")
	cmd.Flags().BoolVarP(&hardlink, "hardlink", "l", false, "Hard link assets to the output folder")
	cmd.Flags().BoolVarP(&symlink, "symlink", "s", false, "Symbolically link assets to the output folder")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent hash workers (0 = one per CPU)")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable styled output")

	_ = cmd.MarkFlagRequired("world")
	_ = cmd.MarkFlagRequired("game")
	cmd.MarkFlagsMutuallyExclusive("copy", "hardlink", "symlink")
	cmd.MarkFlagsMutuallyExclusive("out", "index")
	cmd.MarkFlagsMutuallyExclusive("out", "media-dir")
	cmd.MarkFlagsRequiredTogether("index", "media-dir")
	cmd.MarkFlagsOneRequired("out", "media-dir")

	return cmd
}

// resolveMode picks the placement mode: an explicit flag wins, else the
// configured default applies.
func resolveMode(doCopy, hardlink, symlink bool, configured string) (types.PlaceMode, error) {
	switch {
	case doCopy:
		return types.PlaceCopy, nil
	case hardlink:
		return types.PlaceHardlink, nil
	case symlink:
		return types.PlaceSymlink, nil
	}
	mode, err := types.ParsePlaceMode(configured)
	if err != nil {
		return types.PlaceNone, errors.Wrap(err, errors.ErrInvalidInput, "invalid place_mode in configuration")
	}
	return mode, nil
}

// validatePaths enforces the CLI contract: source paths must be
// existing directories and the output path must exist or have an
// existing parent.
func validatePaths(opts *core.BuildOptions) error {
	for _, p := range append([]string{opts.WorldPath, opts.GamePath}, opts.ExtraPaths...) {
		if !isDir(p) {
			return errors.Newf(errors.ErrInvalidInput, "not a directory: %s", p)
		}
	}
	if !isDir(opts.MediaDir) && !isDir(filepath.Dir(opts.MediaDir)) {
		return errors.Newf(errors.ErrInvalidInput, "output directory %s does not exist and cannot be created", opts.MediaDir)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
