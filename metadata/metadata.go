// Package metadata maps simulated sample names to the normalization
// constants needed to scale them to a given integrated luminosity.
package metadata

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSample = errors.New("metadata: unknown sample")
	ErrBadRecord     = errors.New("metadata: invalid normalization record")
)

// Record holds the per-sample normalization constants.
type Record struct {
	CrossSection float64 // production cross-section, in pb
	SumW         float64 // sum of generator weights before any skim
	RedEff       float64 // skim reduction efficiency
	DSID         int     // dataset identifier
}

func (r Record) validate(sample string) error {
	if r.SumW <= 0 || r.RedEff <= 0 {
		return fmt.Errorf("%w: sample %q has sumw=%v red_eff=%v (must be > 0)",
			ErrBadRecord, sample, r.SumW, r.RedEff,
		)
	}
	return nil
}

// Table is a read-only sample lookup. It is safe for concurrent use
// once built.
type Table map[string]Record

// Lookup returns the normalization record for the named sample.
// It fails with ErrUnknownSample for absent samples and with
// ErrBadRecord for records whose divisors are not strictly positive.
func (t Table) Lookup(sample string) (Record, error) {
	rec, ok := t[sample]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownSample, sample)
	}
	if err := rec.validate(sample); err != nil {
		return Record{}, err
	}
	return rec, nil
}
