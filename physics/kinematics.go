package physics

import (
	"errors"
	"fmt"
	"math"

	"go-hep.org/x/hep/fmom"

	"github.com/opendata-hep/hzz4l/eventio"
)

// ErrInsufficientLeptons is returned when an event reaches the mass
// calculation with fewer than four leptons. The inputs are pre-filtered
// upstream to have at least four; anything shorter is a broken input,
// not a selectable event.
var ErrInsufficientLeptons = errors.New("physics: event has fewer than 4 leptons")

// MeVToGeV rescales the storage energy unit to the reporting unit.
const MeVToGeV = 0.001

// InvariantMass sums the four-momenta of the first four leptons, in
// stored order, and returns the invariant mass of the system in GeV.
// Leptons beyond the fourth are ignored.
func InvariantMass(pt, eta, phi, e []float32) (float64, error) {
	if len(pt) < 4 || len(eta) < 4 || len(phi) < 4 || len(e) < 4 {
		return 0, fmt.Errorf("%w: got %d", ErrInsufficientLeptons, len(pt))
	}

	var sum fmom.PxPyPzE
	for i := 0; i < 4; i++ {
		var (
			lpt  = float64(pt[i])
			leta = float64(eta[i])
			lphi = float64(phi[i])
		)
		p := fmom.NewPxPyPzE(
			lpt*math.Cos(lphi),
			lpt*math.Sin(lphi),
			lpt*math.Sinh(leta),
			float64(e[i]),
		)
		fmom.IAdd(&sum, &p)
	}
	return sum.M() * MeVToGeV, nil
}

// Masses computes the four-lepton invariant mass of every event in the
// batch, index-aligned with it.
func Masses(b *eventio.Batch) ([]float64, error) {
	ms := make([]float64, b.Len())
	for i := range ms {
		m, err := InvariantMass(b.LepPt[i], b.LepEta[i], b.LepPhi[i], b.LepE[i])
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		ms[i] = m
	}
	return ms, nil
}
