package genconfig

// Message constants
const (
	MsgShort = "Emit a default configuration file"
	MsgLong  = `The 'genconfig' command prints a default mediastore.toml. Place it in
the XDG config directory (~/.config/mediastore/) or the working
directory; flags always override configured values.`

	MsgExample = `  # Print defaults
  mediastore genconfig

  # Install as user configuration
  mediastore genconfig -o ~/.config/mediastore/mediastore.toml`
)
