package store

import (
	"os"
	"path/filepath"

	"github.com/mtcontrib/mediastore/pkg/errors"
	"github.com/mtcontrib/mediastore/pkg/logging"
	"github.com/mtcontrib/mediastore/pkg/types"
)

// Failure records a placement that could not be performed. One asset's
// failure never blocks the others.
type Failure struct {
	Asset types.Asset
	Err   error
}

// Report summarizes a materialization pass.
type Report struct {
	// Placed counts assets newly written to the store.
	Placed int

	// Skipped counts assets whose store entry already existed and was
	// left untouched.
	Skipped int

	// Failures holds per-asset placement errors.
	Failures []Failure
}

// Materializer places canonical assets into an output directory using a
// configured strategy.
type Materializer struct {
	placer    Placer
	outputDir string
}

// NewMaterializer returns a materializer that places assets into
// outputDir with the given strategy.
func NewMaterializer(placer Placer, outputDir string) *Materializer {
	return &Materializer{placer: placer, outputDir: outputDir}
}

// Materialize places every asset of the canonical set at
// <outputDir>/<hex of its identifier>. Entries that already exist are
// skipped, so re-runs against the same store are safe and only write
// newly discovered content. Placement failures are isolated per asset
// and reported together; the returned error is non-nil when any asset
// failed.
func (m *Materializer) Materialize(set *types.CanonicalSet) (*Report, error) {
	logger := logging.GetLogger("store")
	report := &Report{}

	if m.placer.Mode() == types.PlaceNone {
		logger.Debug().Msg("Placement mode none, index-only run")
		return report, nil
	}

	for _, asset := range set.Assets() {
		dst := filepath.Join(m.outputDir, asset.ID.Hex())

		// Lstat so a dangling symlink still counts as materialized.
		if _, err := os.Lstat(dst); err == nil {
			report.Skipped++
			continue
		}

		if err := m.placer.Place(asset.Path, dst); err != nil {
			logger.Warn().Err(err).Str("asset", asset.Path).Str("dst", dst).Msg("Placement failed")
			report.Failures = append(report.Failures, Failure{
				Asset: asset,
				Err:   errors.Wrapf(err, errors.ErrPlaceFailed, "cannot place %s", asset.Path),
			})
			continue
		}
		report.Placed++
	}

	logger.Info().
		Str("mode", m.placer.Mode().String()).
		Int("placed", report.Placed).
		Int("skipped", report.Skipped).
		Int("failed", len(report.Failures)).
		Msg("Materialization finished")

	if len(report.Failures) > 0 {
		return report, errors.Newf(errors.ErrPlaceFailed,
			"%d of %d assets could not be placed", len(report.Failures), set.Len())
	}
	return report, nil
}
