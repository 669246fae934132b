package types

import (
	"sort"
)

// Asset is one discovered media file: the path it was found at and the
// content identifier of its bytes. Two assets with identical bytes are
// the same asset regardless of path.
type Asset struct {
	// Path is the absolute path the file was discovered at.
	Path string

	// ID is the content identifier of the file's bytes.
	ID ContentID

	// Seq is the discovery sequence number. Discovery order (world mods,
	// then game mods, then extra paths, depth-first within each) is the
	// tie-break that decides which path survives deduplication.
	Seq int
}

// AssetCollection accumulates assets in discovery order across all walked
// roots. It is the input to Canonicalize.
type AssetCollection struct {
	assets []Asset
}

// NewAssetCollection returns an empty collection.
func NewAssetCollection() *AssetCollection {
	return &AssetCollection{}
}

// Add appends an asset, assigning it the next discovery sequence number.
func (c *AssetCollection) Add(path string, id ContentID) {
	c.assets = append(c.assets, Asset{Path: path, ID: id, Seq: len(c.assets)})
}

// Len returns the number of assets collected so far, duplicates included.
func (c *AssetCollection) Len() int {
	return len(c.assets)
}

// Assets returns the collected assets in discovery order.
func (c *AssetCollection) Assets() []Asset {
	return c.assets
}

// CanonicalSet is the deduplicated collection: assets in strictly
// ascending ContentID order, at most one per identifier. Both the index
// writer and the materializer consume it read-only.
type CanonicalSet struct {
	assets []Asset
}

// Canonicalize sorts the collection by content identifier (stable on the
// discovery sequence for equal identifiers) and drops consecutive
// duplicates, keeping the first occurrence. The retained path for any
// identifier is therefore the earliest-discovered one.
func (c *AssetCollection) Canonicalize() *CanonicalSet {
	sorted := make([]Asset, len(c.assets))
	copy(sorted, c.assets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID.Compare(sorted[j].ID) < 0
	})

	unique := sorted[:0]
	for _, a := range sorted {
		if len(unique) > 0 && a.ID == unique[len(unique)-1].ID {
			continue
		}
		unique = append(unique, a)
	}
	return &CanonicalSet{assets: unique}
}

// Len returns the number of distinct assets.
func (s *CanonicalSet) Len() int {
	return len(s.assets)
}

// Assets returns the assets in ascending ContentID order.
func (s *CanonicalSet) Assets() []Asset {
	return s.assets
}

// IDs returns the content identifiers in ascending order.
func (s *CanonicalSet) IDs() []ContentID {
	ids := make([]ContentID, len(s.assets))
	for i, a := range s.assets {
		ids[i] = a.ID
	}
	return ids
}
