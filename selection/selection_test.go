package selection

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/opendata-hep/hzz4l/eventio"
	"github.com/opendata-hep/hzz4l/physics"
)

func TestRejectCharge(t *testing.T) {
	for _, tc := range []struct {
		charge []int32
		reject bool
	}{
		{[]int32{+1, -1, +1, -1}, false},
		{[]int32{+1, +1, -1, -1}, false},
		{[]int32{+1, +1, +1, -1}, true},
		{[]int32{-1, -1, -1, -1}, true},
	} {
		if got := RejectCharge(tc.charge); got != tc.reject {
			t.Errorf("charges %v: got reject=%v, want %v", tc.charge, got, tc.reject)
		}
	}
}

func TestRejectType(t *testing.T) {
	for _, tc := range []struct {
		typ    []uint32
		reject bool
	}{
		{[]uint32{11, 11, 11, 11}, false}, // 4e  → 44
		{[]uint32{11, 13, 11, 13}, false}, // 2e2μ → 48
		{[]uint32{13, 13, 13, 13}, false}, // 4μ  → 52
		{[]uint32{11, 11, 11, 7}, true},   // 40
		{[]uint32{13, 13, 13, 17}, true},  // 56
		{[]uint32{11, 11, 11, 13}, true},  // 46
	} {
		if got := RejectType(tc.typ); got != tc.reject {
			t.Errorf("types %v: got reject=%v, want %v", tc.typ, got, tc.reject)
		}
	}
}

func TestCut(t *testing.T) {
	b := &eventio.Batch{
		LepPt: [][]float32{{1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4}, {1, 2, 3, 4, 5}},
		LepCharge: [][]int32{
			{+1, -1, +1, -1}, // keep
			{+1, +1, +1, -1}, // bad charge
			{+1, -1, +1, -1}, // bad flavor
			{+1, +1, -1, -1}, // keep: 4μ, fifth lepton ignored
		},
		LepType: [][]uint32{
			{11, 11, 13, 13},
			{11, 11, 13, 13},
			{11, 11, 11, 13},
			{13, 13, 13, 13, 11},
		},
	}
	b.LepCharge[3] = append(b.LepCharge[3], +1)

	keep, err := Cut(b)
	if err != nil {
		t.Fatal(err)
	}
	want := []bool{true, false, false, true}
	if diff := cmp.Diff(want, keep); diff != "" {
		t.Errorf("keep mask mismatch (-want +got):\n%s", diff)
	}
}

func TestCutInsufficientLeptons(t *testing.T) {
	b := &eventio.Batch{
		LepPt:     [][]float32{{1, 2, 3}},
		LepCharge: [][]int32{{+1, -1, +1}},
		LepType:   [][]uint32{{11, 11, 13}},
	}

	if _, err := Cut(b); !errors.Is(err, physics.ErrInsufficientLeptons) {
		t.Fatalf("got %v, want ErrInsufficientLeptons", err)
	}
}
