// Package selection rejects four-lepton events that cannot come from a
// ZZ* pair decay.
package selection

import (
	"fmt"

	"github.com/opendata-hep/hzz4l/eventio"
	"github.com/opendata-hep/hzz4l/physics"
)

// electron and muon PDG-style type codes as stored in lep_type.
const (
	Electron = 11
	Muon     = 13
)

// RejectCharge reports whether the first four leptons carry a net
// charge: two opposite-charge pairs must sum to zero.
func RejectCharge(charge []int32) bool {
	return charge[0]+charge[1]+charge[2]+charge[3] != 0
}

// RejectType reports whether the first four leptons' type codes are
// incompatible with 4e, 2e2μ or 4μ. Only the aggregate composition is
// checked; pairwise same-flavor opposite-charge assignment is
// deliberately left unverified, matching the upstream analysis.
func RejectType(typ []uint32) bool {
	switch typ[0] + typ[1] + typ[2] + typ[3] {
	case 4 * Electron, 2*Electron + 2*Muon, 4 * Muon:
		return false
	}
	return true
}

// Cut evaluates both predicates on every event of the batch and returns
// a keep-mask aligned with it: true where the event passes both the
// charge-balance and the flavor-composition requirement. Events with
// fewer than four leptons are a broken input and fail the whole batch.
func Cut(b *eventio.Batch) ([]bool, error) {
	keep := make([]bool, b.Len())
	for i := range keep {
		if len(b.LepCharge[i]) < 4 || len(b.LepType[i]) < 4 {
			return nil, fmt.Errorf("event %d: %w", i, physics.ErrInsufficientLeptons)
		}
		keep[i] = !RejectCharge(b.LepCharge[i]) && !RejectType(b.LepType[i])
	}
	return keep, nil
}
