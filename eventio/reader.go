// Package eventio streams batches of per-event lepton records out of
// ROOT files holding the four-lepton analysis tree.
package eventio

import (
	"errors"
	"fmt"
	"sync"

	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	_ "go-hep.org/x/hep/groot/riofs/plugin/http"
	_ "go-hep.org/x/hep/groot/riofs/plugin/xrootd"
	"go-hep.org/x/hep/groot/rtree"
)

// ErrSchema indicates that the input file does not expose the expected
// tree layout (missing branch, ragged lepton columns).
var ErrSchema = errors.New("eventio: schema mismatch")

// errStopScan aborts the background rtree read when the scanner is
// closed mid-stream. It never escapes to the caller.
var errStopScan = errors.New("eventio: stop scan")

// DefaultTree is the name of the per-event tree in the four-lepton
// open-data files.
const DefaultTree = "mini"

// KinematicColumns are the branches every sample must provide.
var KinematicColumns = []string{
	"lep_pt", "lep_eta", "lep_phi", "lep_E", "lep_charge", "lep_type",
}

// WeightColumns are the calibration branches provided by simulated
// samples only.
var WeightColumns = []string{
	"mcWeight",
	"scaleFactor_PILEUP",
	"scaleFactor_ELE",
	"scaleFactor_MUON",
	"scaleFactor_LepTRIGGER",
}

// Options configures a Scanner.
type Options struct {
	Tree      string  // tree name, DefaultTree if empty
	Fraction  float64 // fraction of available events to deliver, in (0,1]; 1 if zero
	BatchSize int     // events per batch, 4096 if zero
	Weights   bool    // also read the simulation calibration columns
}

func (o *Options) setDefaults() error {
	if o.Tree == "" {
		o.Tree = DefaultTree
	}
	if o.Fraction == 0 {
		o.Fraction = 1
	}
	if o.Fraction <= 0 || o.Fraction > 1 {
		return fmt.Errorf("eventio: fraction %v out of (0,1]", o.Fraction)
	}
	if o.BatchSize <= 0 {
		o.BatchSize = 4096
	}
	return nil
}

// rbuf holds the per-entry read buffers that rtree refills in place.
type rbuf struct {
	pt, eta, phi, e []float32
	charge          []int32
	typ             []uint32

	mcw, sfPileup, sfEle, sfMuon, sfTrigger float32
}

// Scanner streams the events of one file as batches, in on-disk order.
// The sequence is finite and non-restartable: it delivers exactly
// floor(entries × Fraction) events, truncating the last batch to hit
// the cap. Callers must call Close, which releases the underlying file
// handle even when the stream is abandoned mid-way.
type Scanner struct {
	f *riofs.File
	r *rtree.Reader

	ch        chan *Batch
	stop      chan struct{}
	done      chan struct{}
	cur       *Batch
	err       error
	closeOnce sync.Once
	closeErr  error
}

// Open opens the tree in the named file and prepares a batched scan
// over it. The path may be local, http(s), or xrootd.
func Open(path string, opts Options) (*Scanner, error) {
	if err := opts.setDefaults(); err != nil {
		return nil, err
	}

	f, err := groot.Open(path)
	if err != nil {
		return nil, fmt.Errorf("eventio: could not open %q: %w", path, err)
	}

	obj, err := f.Get(opts.Tree)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: no tree %q in %q", ErrSchema, opts.Tree, path)
	}
	tree, ok := obj.(rtree.Tree)
	if !ok {
		f.Close()
		return nil, fmt.Errorf("%w: object %q in %q is not a tree", ErrSchema, opts.Tree, path)
	}

	cols := KinematicColumns
	if opts.Weights {
		cols = append(append([]string{}, cols...), WeightColumns...)
	}
	for _, col := range cols {
		if tree.Branch(col) == nil {
			f.Close()
			return nil, fmt.Errorf("%w: no branch %q in %q", ErrSchema, col, path)
		}
	}

	nmax := int64(opts.Fraction * float64(tree.Entries()))

	s := &Scanner{
		f:    f,
		ch:   make(chan *Batch, 1),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	var buf rbuf
	rvars := []rtree.ReadVar{
		{Name: "lep_pt", Value: &buf.pt},
		{Name: "lep_eta", Value: &buf.eta},
		{Name: "lep_phi", Value: &buf.phi},
		{Name: "lep_E", Value: &buf.e},
		{Name: "lep_charge", Value: &buf.charge},
		{Name: "lep_type", Value: &buf.typ},
	}
	if opts.Weights {
		rvars = append(rvars,
			rtree.ReadVar{Name: "mcWeight", Value: &buf.mcw},
			rtree.ReadVar{Name: "scaleFactor_PILEUP", Value: &buf.sfPileup},
			rtree.ReadVar{Name: "scaleFactor_ELE", Value: &buf.sfEle},
			rtree.ReadVar{Name: "scaleFactor_MUON", Value: &buf.sfMuon},
			rtree.ReadVar{Name: "scaleFactor_LepTRIGGER", Value: &buf.sfTrigger},
		)
	}

	if nmax == 0 {
		// Nothing to deliver: an empty, already-exhausted scan.
		close(s.ch)
		close(s.done)
		return s, nil
	}

	r, err := rtree.NewReader(tree, rvars, rtree.WithRange(0, nmax))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("eventio: could not set up reader for %q: %w", path, err)
	}
	s.r = r

	go s.scan(&buf, opts)

	return s, nil
}

func (s *Scanner) scan(buf *rbuf, opts Options) {
	defer close(s.ch)
	defer close(s.done)

	cur := newBatch(opts.Weights, opts.BatchSize)
	err := s.r.Read(func(rctx rtree.RCtx) error {
		if err := cur.append(buf, opts.Weights); err != nil {
			return err
		}
		if cur.Len() == opts.BatchSize {
			select {
			case s.ch <- cur:
				cur = newBatch(opts.Weights, opts.BatchSize)
			case <-s.stop:
				return errStopScan
			}
		}
		return nil
	})

	switch {
	case err == nil:
		if cur.Len() > 0 {
			select {
			case s.ch <- cur:
			case <-s.stop:
			}
		}
	case errors.Is(err, errStopScan):
		// closed by the caller, not an error.
	default:
		s.err = err
	}
}

// Next advances the scan to the next batch. It returns false when the
// stream is exhausted or failed; consult Err to tell the two apart.
func (s *Scanner) Next() bool {
	b, ok := <-s.ch
	if !ok {
		return false
	}
	s.cur = b
	return true
}

// Batch returns the batch produced by the last successful Next.
func (s *Scanner) Batch() *Batch { return s.cur }

// Err returns the first error encountered during the scan, if any.
// It is meaningful once Next has returned false.
func (s *Scanner) Err() error { return s.err }

// Close aborts any in-flight read and releases the file handle. It is
// safe to call multiple times and after the scan is exhausted.
func (s *Scanner) Close() error {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
		if s.r != nil {
			s.closeErr = s.r.Close()
		}
		if err := s.f.Close(); err != nil && s.closeErr == nil {
			s.closeErr = err
		}
	})
	return s.closeErr
}
