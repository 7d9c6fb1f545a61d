package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/opendata-hep/hzz4l/eventio"
	"github.com/opendata-hep/hzz4l/metadata"
)

func TestWeights(t *testing.T) {
	b := &eventio.Batch{
		LepPt:     [][]float32{{1, 2, 3, 4}, {1, 2, 3, 4}},
		MCWeight:  []float32{0.5, -1.0},
		SFPileup:  []float32{1.25, 1.0},
		SFEle:     []float32{0.75, 1.0},
		SFMuon:    []float32{2.0, 0.5},
		SFTrigger: []float32{1.5, 1.0},
	}

	ws, err := Weights(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []float64{
		0.5 * 1.25 * 0.75 * 2.0 * 1.5,
		-1.0 * 1.0 * 1.0 * 0.5 * 1.0,
	}
	for i := range want {
		if math.Abs(ws[i]-want[i]) > 1e-12 {
			t.Errorf("event %d: got %v, want %v", i, ws[i], want[i])
		}
	}
}

// permuting the scale-factor columns must not change the product.
func TestWeightsCommutative(t *testing.T) {
	b1 := &eventio.Batch{
		LepPt:     [][]float32{{1, 2, 3, 4}},
		MCWeight:  []float32{0.7},
		SFPileup:  []float32{1.25},
		SFEle:     []float32{0.75},
		SFMuon:    []float32{2.0},
		SFTrigger: []float32{1.5},
	}
	b2 := &eventio.Batch{
		LepPt:     b1.LepPt,
		MCWeight:  b1.MCWeight,
		SFPileup:  b1.SFTrigger,
		SFEle:     b1.SFMuon,
		SFMuon:    b1.SFEle,
		SFTrigger: b1.SFPileup,
	}

	w1, err := Weights(b1)
	if err != nil {
		t.Fatal(err)
	}
	w2, err := Weights(b2)
	if err != nil {
		t.Fatal(err)
	}
	if w1[0] != w2[0] {
		t.Errorf("weight depends on scale-factor order: %v != %v", w1[0], w2[0])
	}
}

func TestWeightsObservedData(t *testing.T) {
	b := &eventio.Batch{LepPt: [][]float32{{1, 2, 3, 4}}}

	if _, err := Weights(b); !errors.Is(err, ErrNotApplicable) {
		t.Fatalf("got %v, want ErrNotApplicable", err)
	}
}

func TestCrossSectionWeight(t *testing.T) {
	rec := metadata.Record{CrossSection: 0.006, SumW: 3.0e7, RedEff: 1.0, DSID: 345060}

	xw, err := CrossSectionWeight(rec, 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := 10 * 1000 * 0.006 / 3.0e7
	if math.Abs(xw-want) > 1e-18 {
		t.Errorf("got %v, want %v", xw, want)
	}

	// halving the fraction doubles the weight: half the generated
	// events stand in for the whole sample.
	xwHalf, err := CrossSectionWeight(rec, 10, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(xwHalf-2*xw) > 1e-18 {
		t.Errorf("fraction=0.5: got %v, want %v", xwHalf, 2*xw)
	}
}

func TestCrossSectionWeightBadDivisor(t *testing.T) {
	for _, rec := range []metadata.Record{
		{CrossSection: 1, SumW: 0, RedEff: 1},
		{CrossSection: 1, SumW: 10, RedEff: 0},
	} {
		if _, err := CrossSectionWeight(rec, 10, 1); !errors.Is(err, ErrBadNormalization) {
			t.Errorf("rec=%+v: got %v, want ErrBadNormalization", rec, err)
		}
	}
}
