package types

import "fmt"

// PlaceMode selects how the materializer puts asset bytes into the
// output store.
type PlaceMode int

const (
	// PlaceNone writes the index only; no asset bytes are placed.
	PlaceNone PlaceMode = iota

	// PlaceCopy duplicates the file bytes into the store.
	PlaceCopy

	// PlaceHardlink hard-links the store entry to the source file.
	// Fails when source and store are on different volumes.
	PlaceHardlink

	// PlaceSymlink symlinks the store entry to the source file.
	// Unavailable on platforms without the primitive.
	PlaceSymlink
)

func (m PlaceMode) String() string {
	switch m {
	case PlaceNone:
		return "none"
	case PlaceCopy:
		return "copy"
	case PlaceHardlink:
		return "hardlink"
	case PlaceSymlink:
		return "symlink"
	}
	return fmt.Sprintf("PlaceMode(%d)", int(m))
}

// ParsePlaceMode converts a config or flag value into a PlaceMode.
func ParsePlaceMode(s string) (PlaceMode, error) {
	switch s {
	case "none", "":
		return PlaceNone, nil
	case "copy":
		return PlaceCopy, nil
	case "hardlink":
		return PlaceHardlink, nil
	case "symlink":
		return PlaceSymlink, nil
	}
	return PlaceNone, fmt.Errorf("unknown placement mode %q (want none, copy, hardlink or symlink)", s)
}
