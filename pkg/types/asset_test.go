package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtcontrib/mediastore/pkg/types"
)

func idWithFirstByte(b byte) types.ContentID {
	var id types.ContentID
	id[0] = b
	return id
}

func TestCanonicalize_SortsAndDeduplicates(t *testing.T) {
	coll := types.NewAssetCollection()
	coll.Add("/mods/b/textures/x.png", idWithFirstByte(3))
	coll.Add("/mods/a/textures/y.png", idWithFirstByte(1))
	coll.Add("/mods/c/textures/z.png", idWithFirstByte(3))
	coll.Add("/mods/d/sounds/w.ogg", idWithFirstByte(2))

	set := coll.Canonicalize()

	require.Equal(t, 3, set.Len())
	assets := set.Assets()
	assert.Equal(t, idWithFirstByte(1), assets[0].ID)
	assert.Equal(t, idWithFirstByte(2), assets[1].ID)
	assert.Equal(t, idWithFirstByte(3), assets[2].ID)

	// Identifiers strictly ascending, no duplicates.
	for i := 1; i < len(assets); i++ {
		assert.Negative(t, assets[i-1].ID.Compare(assets[i].ID))
	}
}

func TestCanonicalize_KeepsEarliestDiscoveredPath(t *testing.T) {
	coll := types.NewAssetCollection()
	coll.Add("/worldmods/a/textures/t.png", idWithFirstByte(7))
	coll.Add("/game/mods/b/textures/t.png", idWithFirstByte(7))
	coll.Add("/extra/c/textures/t.png", idWithFirstByte(7))

	set := coll.Canonicalize()

	require.Equal(t, 1, set.Len())
	assert.Equal(t, "/worldmods/a/textures/t.png", set.Assets()[0].Path)
	assert.Equal(t, 0, set.Assets()[0].Seq)
}

func TestCanonicalize_EmptyCollection(t *testing.T) {
	set := types.NewAssetCollection().Canonicalize()
	assert.Zero(t, set.Len())
	assert.Empty(t, set.IDs())
}

func TestContentID_HexRoundTrip(t *testing.T) {
	var id types.ContentID
	for i := range id {
		id[i] = byte(i * 7)
	}

	hexed := id.Hex()
	require.Len(t, hexed, 40)

	parsed, err := types.ParseContentID(hexed)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseContentID_Invalid(t *testing.T) {
	_, err := types.ParseContentID("short")
	assert.Error(t, err)

	_, err = types.ParseContentID("zz" + string(make([]byte, 38)))
	assert.Error(t, err)
}

func TestParsePlaceMode(t *testing.T) {
	cases := map[string]types.PlaceMode{
		"":         types.PlaceNone,
		"none":     types.PlaceNone,
		"copy":     types.PlaceCopy,
		"hardlink": types.PlaceHardlink,
		"symlink":  types.PlaceSymlink,
	}
	for input, want := range cases {
		mode, err := types.ParsePlaceMode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, mode, input)
	}

	_, err := types.ParsePlaceMode("softlink")
	assert.Error(t, err)
}
