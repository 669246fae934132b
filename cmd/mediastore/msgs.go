package main

// Message constants
const (
	MsgRootShort = "Build a content-addressed media store for networked asset distribution"

	MsgRootLong = `mediastore discovers every media file referenced by a world's enabled
mods, names each by the digest of its bytes, and produces the binary
manifest plus the content-addressed store that media servers hand out
to clients.

Sources are searched in a fixed precedence: the world's own mods, then
the game's bundled mods, then any extra mod paths. Identical files are
stored once no matter how many mods ship them.`
)
