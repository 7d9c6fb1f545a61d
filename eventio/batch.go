package eventio

import (
	"fmt"
	"slices"
)

// Batch is a fixed-size slice of consecutive events in columnar form.
// The lepton columns are jagged: one inner slice per event, and all
// lepton columns of one event have the same inner length. The
// calibration columns are populated only when the batch was read with
// Options.Weights set.
type Batch struct {
	LepPt     [][]float32
	LepEta    [][]float32
	LepPhi    [][]float32
	LepE      [][]float32
	LepCharge [][]int32
	LepType   [][]uint32

	MCWeight  []float32
	SFPileup  []float32
	SFEle     []float32
	SFMuon    []float32
	SFTrigger []float32
}

// Len returns the number of events in the batch.
func (b *Batch) Len() int { return len(b.LepPt) }

// HasWeights reports whether the batch carries simulation calibration
// columns.
func (b *Batch) HasWeights() bool { return b.MCWeight != nil }

func newBatch(weights bool, n int) *Batch {
	b := &Batch{
		LepPt:     make([][]float32, 0, n),
		LepEta:    make([][]float32, 0, n),
		LepPhi:    make([][]float32, 0, n),
		LepE:      make([][]float32, 0, n),
		LepCharge: make([][]int32, 0, n),
		LepType:   make([][]uint32, 0, n),
	}
	if weights {
		b.MCWeight = make([]float32, 0, n)
		b.SFPileup = make([]float32, 0, n)
		b.SFEle = make([]float32, 0, n)
		b.SFMuon = make([]float32, 0, n)
		b.SFTrigger = make([]float32, 0, n)
	}
	return b
}

// append copies one event out of the reused rtree buffers into the batch.
func (b *Batch) append(v *rbuf, weights bool) error {
	n := len(v.pt)
	if len(v.eta) != n || len(v.phi) != n || len(v.e) != n ||
		len(v.charge) != n || len(v.typ) != n {
		return fmt.Errorf("%w: ragged lepton columns (pt=%d eta=%d phi=%d E=%d charge=%d type=%d)",
			ErrSchema, n, len(v.eta), len(v.phi), len(v.e), len(v.charge), len(v.typ),
		)
	}

	b.LepPt = append(b.LepPt, slices.Clone(v.pt))
	b.LepEta = append(b.LepEta, slices.Clone(v.eta))
	b.LepPhi = append(b.LepPhi, slices.Clone(v.phi))
	b.LepE = append(b.LepE, slices.Clone(v.e))
	b.LepCharge = append(b.LepCharge, slices.Clone(v.charge))
	b.LepType = append(b.LepType, slices.Clone(v.typ))

	if weights {
		b.MCWeight = append(b.MCWeight, v.mcw)
		b.SFPileup = append(b.SFPileup, v.sfPileup)
		b.SFEle = append(b.SFEle, v.sfEle)
		b.SFMuon = append(b.SFMuon, v.sfMuon)
		b.SFTrigger = append(b.SFTrigger, v.sfTrigger)
	}
	return nil
}
