// Package histio bins per-category mass spectra and serializes them
// into a single ROOT container for downstream combination.
package histio

import (
	"fmt"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/rhist"
	"go-hep.org/x/hep/hbook"
)

// Def fixes the shared binning of every exported histogram. All
// histograms of one run must use the same Def or the downstream
// combination step cannot add them.
type Def struct {
	Bins   int
	Lo, Hi float64
}

// DefaultDef is the four-lepton mass binning: 36 bins over [70,180] GeV.
func DefaultDef() Def { return Def{Bins: 36, Lo: 70, Hi: 180} }

// Fill books a histogram with the given binning and fills it with the
// weighted masses. weights may be nil, in which case every entry counts
// with weight 1 (observed data: per-bin uncertainty reduces to √count).
// Masses outside [Lo,Hi) land in the under/overflow and never distort
// the edge bins.
func Fill(def Def, name string, masses, weights []float64) (*hbook.H1D, error) {
	if weights != nil && len(weights) != len(masses) {
		return nil, fmt.Errorf("histio: %d masses but %d weights for %q",
			len(masses), len(weights), name,
		)
	}

	h := hbook.NewH1D(def.Bins, def.Lo, def.Hi)
	h.Ann["name"] = name
	h.Ann["title"] = name
	for i, m := range masses {
		w := 1.0
		if weights != nil {
			w = weights[i]
		}
		h.Fill(m, w)
	}
	return h, nil
}

// Write serializes the histograms into one ROOT file, each keyed by its
// name. The export is write-once: an existing file is truncated.
func Write(path string, hists []*hbook.H1D) error {
	f, err := groot.Create(path)
	if err != nil {
		return fmt.Errorf("histio: could not create %q: %w", path, err)
	}
	for _, h := range hists {
		if err := f.Put(h.Name(), rhist.NewH1DFrom(h)); err != nil {
			f.Close()
			return fmt.Errorf("histio: could not write %q to %q: %w", h.Name(), path, err)
		}
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("histio: could not close %q: %w", path, err)
	}
	return nil
}
