// Package physics derives per-event quantities — calibration weights
// and the four-lepton invariant mass — from event batches.
package physics

import (
	"errors"
	"fmt"

	"github.com/opendata-hep/hzz4l/eventio"
	"github.com/opendata-hep/hzz4l/metadata"
)

var (
	// ErrNotApplicable is returned when a simulation-only quantity is
	// requested for observed data.
	ErrNotApplicable = errors.New("physics: not applicable to observed data")

	// ErrBadNormalization signals a non-positive normalization divisor.
	ErrBadNormalization = errors.New("physics: invalid normalization")
)

// Weights returns the combined calibration weight of each event in the
// batch: the generator weight times the pileup, electron, muon and
// trigger scale factors. The batch must carry calibration columns;
// observed data does not, and asking for its weights is a contract
// violation.
func Weights(b *eventio.Batch) ([]float64, error) {
	if !b.HasWeights() {
		return nil, ErrNotApplicable
	}

	ws := make([]float64, b.Len())
	for i := range ws {
		ws[i] = float64(b.MCWeight[i]) *
			float64(b.SFPileup[i]) *
			float64(b.SFEle[i]) *
			float64(b.SFMuon[i]) *
			float64(b.SFTrigger[i])
	}
	return ws, nil
}

// CrossSectionWeight scales one simulated sample to the integrated
// luminosity of the observed dataset:
//
//	lumi × 1000 × xsec / (sumw × redEff × fraction)
//
// lumi is in fb⁻¹ and the cross-section in pb, hence the factor 1000.
// fraction divides the generator-weight sum because only that fraction
// of the sample's events is read; without it a throttled run would be
// under-normalized.
func CrossSectionWeight(rec metadata.Record, lumi, fraction float64) (float64, error) {
	den := rec.SumW * rec.RedEff * fraction
	if den <= 0 {
		return 0, fmt.Errorf("%w: sumw=%v red_eff=%v fraction=%v",
			ErrBadNormalization, rec.SumW, rec.RedEff, fraction,
		)
	}
	return lumi * 1000 * rec.CrossSection / den, nil
}
