package output_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtcontrib/mediastore/pkg/core"
	"github.com/mtcontrib/mediastore/pkg/output"
	"github.com/mtcontrib/mediastore/pkg/store"
	"github.com/mtcontrib/mediastore/pkg/types"
)

func TestSummary_Plain(t *testing.T) {
	var buf bytes.Buffer
	result := &core.Result{
		FilesFound: 12,
		Unique:     9,
		Duplicates: 3,
		Placed:     7,
		Skipped:    2,
		IndexPath:  "/srv/media/index.mth",
	}

	output.NewRenderer(&buf, true).Summary(result, types.PlaceCopy)
	out := buf.String()

	assert.Contains(t, out, "assets found:      12")
	assert.Contains(t, out, "unique assets:     9")
	assert.Contains(t, out, "duplicates merged: 3")
	assert.Contains(t, out, "/srv/media/index.mth")
	assert.Contains(t, out, "placed (copy):  7")
	assert.NotContains(t, out, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestSummary_IndexOnlyOmitsPlacementLine(t *testing.T) {
	var buf bytes.Buffer
	output.NewRenderer(&buf, true).Summary(&core.Result{Unique: 1}, types.PlaceNone)
	assert.NotContains(t, buf.String(), "placed")
}

func TestSummary_ListsFailures(t *testing.T) {
	var buf bytes.Buffer
	result := &core.Result{
		Unique: 2,
		Placed: 1,
		Failures: []store.Failure{
			{Asset: types.Asset{Path: "/mods/a/textures/t.png"}, Err: assert.AnError},
		},
	}

	output.NewRenderer(&buf, true).Summary(result, types.PlaceHardlink)
	assert.Contains(t, buf.String(), "1 placement failure(s):")
	assert.Contains(t, buf.String(), "/mods/a/textures/t.png")
}
