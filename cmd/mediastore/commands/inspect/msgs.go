package inspect

// Message constants
const (
	MsgShort = "Decode a media manifest"
	MsgLong  = `The 'inspect' command decodes an index.mth manifest and prints its
entry count and content identifiers. Useful for checking what a store
serves and for diffing two manifests.`

	MsgExample = `  # List manifest entries
  mediastore inspect media/index.mth

  # Machine-readable report
  mediastore inspect media/index.mth --format yaml`
)
