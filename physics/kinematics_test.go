package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/opendata-hep/hzz4l/eventio"
)

// two massless back-to-back pairs: total momentum vanishes, so the
// invariant mass is the scalar energy sum.
func fourLeptons(p1, p2 float32) (pt, eta, phi, e []float32) {
	pt = []float32{p1, p1, p2, p2}
	eta = []float32{0, 0, 0, 0}
	phi = []float32{0, math.Pi, math.Pi / 2, -math.Pi / 2}
	e = []float32{p1, p1, p2, p2}
	return pt, eta, phi, e
}

func TestInvariantMass(t *testing.T) {
	pt, eta, phi, e := fourLeptons(35000, 27500) // MeV

	m, err := InvariantMass(pt, eta, phi, e)
	if err != nil {
		t.Fatalf("could not compute mass: %v", err)
	}
	want := 125.0 // 2×(35+27.5) GeV
	if math.Abs(m-want) > 1e-6 {
		t.Errorf("got m=%v GeV, want %v", m, want)
	}
}

func TestInvariantMassIgnoresExtraLeptons(t *testing.T) {
	pt, eta, phi, e := fourLeptons(35000, 27500)
	m4, err := InvariantMass(pt, eta, phi, e)
	if err != nil {
		t.Fatal(err)
	}

	// appending leptons 5..N in any order must not change the mass.
	extras := []float32{1000, 90000, 5}
	for i, x := range extras {
		pt = append(pt, x)
		eta = append(eta, float32(i))
		phi = append(phi, float32(i))
		e = append(e, 2*x)
	}
	mN, err := InvariantMass(pt, eta, phi, e)
	if err != nil {
		t.Fatal(err)
	}
	if mN != m4 {
		t.Errorf("mass changed with extra leptons: %v != %v", mN, m4)
	}
}

func TestInvariantMassInsufficientLeptons(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		pt := make([]float32, n)
		if _, err := InvariantMass(pt, pt, pt, pt); !errors.Is(err, ErrInsufficientLeptons) {
			t.Errorf("n=%d: got %v, want ErrInsufficientLeptons", n, err)
		}
	}
}

func TestMasses(t *testing.T) {
	pt, eta, phi, e := fourLeptons(35000, 27500)
	b := &eventio.Batch{
		LepPt:  [][]float32{pt, pt},
		LepEta: [][]float32{eta, eta},
		LepPhi: [][]float32{phi, phi},
		LepE:   [][]float32{e, e},
	}

	ms, err := Masses(b)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 {
		t.Fatalf("got %d masses, want 2", len(ms))
	}
	for i, m := range ms {
		if math.Abs(m-125.0) > 1e-6 {
			t.Errorf("event %d: got m=%v, want 125", i, m)
		}
	}
}

func TestMassesFailFast(t *testing.T) {
	pt, eta, phi, e := fourLeptons(35000, 27500)
	short := []float32{1, 2, 3}
	b := &eventio.Batch{
		LepPt:  [][]float32{pt, short},
		LepEta: [][]float32{eta, short},
		LepPhi: [][]float32{phi, short},
		LepE:   [][]float32{e, short},
	}

	if _, err := Masses(b); !errors.Is(err, ErrInsufficientLeptons) {
		t.Fatalf("got %v, want ErrInsufficientLeptons", err)
	}
}
