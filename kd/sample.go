package kd

import (
	"fmt"
	"math/rand"
	"sort"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
)

// DefaultSampleCap bounds the number of representative points used to build
// a partition scheme. Schemes built from a capped sample are applied to
// every row of the full dataset, so the cap trades scheme precision for
// build cost only.
const DefaultSampleCap = 65536

// SampleSeed derives a deterministic sampling seed from properties of the
// input, so repeated runs against the same input draw the same subsample
// and therefore freeze the same scheme. This determinism is a required
// property, not an implementation detail.
func SampleSeed(geometryColumn string, numRows int) uint64 {
	return xxhash.Sum64String(fmt.Sprintf("%s:%d", geometryColumn, numRows))
}

// DrawSample returns up to cap representative points from the given slice,
// skipping points whose valid flag is false (valid may be nil to accept
// all). When the valid points exceed cap, a seeded pseudo-random subsample
// is drawn, preserving original point order. Zero valid points is an
// EmptySampleError: no scheme can be built from nothing.
func DrawSample(points []tess.Point, valid []bool, cap int, seed uint64) ([]tess.Point, error) {
	if cap <= 0 {
		cap = DefaultSampleCap
	}
	kept := make([]tess.Point, 0, len(points))
	for i, p := range points {
		if valid != nil && !valid[i] {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil, errors.EmptySampleError{}
	}
	if len(kept) <= cap {
		return kept, nil
	}
	r := rand.New(rand.NewSource(int64(seed)))
	chosen := r.Perm(len(kept))[:cap]
	// restore original point order within the subsample
	sort.Ints(chosen)
	sample := make([]tess.Point, cap)
	for i, idx := range chosen {
		sample[i] = kept[idx]
	}
	return sample, nil
}
