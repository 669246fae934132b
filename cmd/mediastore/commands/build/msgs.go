package build

// Message constants
const (
	MsgShort = "Discover, deduplicate and materialize a world's media"
	MsgLong  = `The 'build' command runs the full pipeline:
  - Reads world.mt to determine which mods are enabled
  - Walks the world's mods, the game's mods and any extra mod paths
  - Hashes every media file (textures, models, sounds) by content
  - Writes the binary index.mth manifest of distinct identifiers
  - Places each unique asset into the store under its hex identifier

Placement is selected with one of --copy, --hardlink or --symlink;
with none of them the run is index-only (or whatever place_mode the
configuration sets). Re-running against an existing store only writes
newly discovered content.`

	MsgExample = `  # Index-only run into ./media
  mediastore build -w ~/.minetest/worlds/foo -g /usr/share/minetest/games/minetest_game -o media

  # Hard link assets, searching an extra mod directory too
  mediastore build -w world -g game -o media --hardlink ~/.minetest/mods

  # Separate manifest and media locations
  mediastore build -w world -g game --index /srv/index.mth --media-dir /srv/media --copy`
)
