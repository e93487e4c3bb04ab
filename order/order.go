// Package order estimates whether a table is laid out in spatial-locality
// order, without assuming any known key column. The estimate is inherently
// a heuristic, not a proof: it is advisory, used to suggest re-sorting,
// never to block writes.
package order

import (
	"math/rand"

	"github.com/go-tess/tess"
	"github.com/go-tess/tess/errors"
	"github.com/go-tess/tess/geom"
)

// DefaultSampleSize is the number of row positions sampled when none is given
const DefaultSampleSize = 200

// DefaultScoreThreshold is the score at or above which a table is deemed ordered
const DefaultScoreThreshold = 0.25

// HeuristicNote documents the advisory nature of the verdict; it is
// attached to every Report
const HeuristicNote = "spatial order score is a statistical estimate from a bounded sample, not a proof of ordering"

// Report is the outcome of a spatial order check
type Report struct {
	IsOrdered          bool    // IsOrdered is the threshold verdict over Score
	Score              float64 // Score is 1 - (average consecutive jump / average random jump), clamped to [0, 1]
	Threshold          float64 // Threshold is the score at or above which IsOrdered is true
	SampledRows        int     // SampledRows is the number of rows with usable geometry that were examined
	AvgConsecutiveJump float64 // AvgConsecutiveJump is the mean centroid distance between consecutive sampled rows
	AvgRandomJump      float64 // AvgRandomJump is the mean centroid distance between randomly paired sampled rows
	Note               string  // Note documents that the verdict is heuristic
}

// Options configures a spatial order check
type Options struct {
	SampleSize int     // SampleSize is the number of row positions to sample. Defaults to 200.
	RowLimit   int     // RowLimit bounds how far into the table sampling reaches, to bound cost on huge tables. 0 means the whole table.
	Threshold  float64 // Threshold overrides the score verdict threshold. 0 means the default.
}

// Check estimates whether the table is ordered by spatial locality: it
// takes a systematic sample of row positions, computes each sampled row's
// bounding-box centroid, and compares the average jump distance between
// consecutive sampled positions with the jump distance expected of a
// random layout (estimated by randomly re-pairing the same centroids with
// a fixed seed). A low consecutive jump relative to the random expectation
// implies spatial ordering. Weak evidence is reported, never treated as a
// failure.
func Check(t tess.Table, geometryColumn string, opts *Options) (*Report, error) {
	if opts == nil {
		opts = &Options{}
	}
	sampleSize := opts.SampleSize
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = DefaultScoreThreshold
	}
	if !t.Schema().HasColumn(geometryColumn) {
		return nil, errors.MissingColumnError{Name: geometryColumn}
	}

	limit := t.NumRows()
	if opts.RowLimit > 0 && opts.RowLimit < limit {
		limit = opts.RowLimit
	}
	report := &Report{Threshold: threshold, Note: HeuristicNote}
	if limit == 0 {
		return report, nil
	}
	step := limit / sampleSize
	if step < 1 {
		step = 1
	}

	centroids := make([]tess.Point, 0, sampleSize)
	for i := 0; i < limit; i += step {
		row := t.GetRow(i)
		if row.IsNil(geometryColumn) {
			continue
		}
		g, err := row.GetGeometry(geometryColumn)
		if err != nil {
			return nil, err
		}
		centroids = append(centroids, geom.BoundsOf(g).Center())
	}
	report.SampledRows = len(centroids)
	if len(centroids) < 3 {
		// too little evidence either way; advisory result, not an error
		return report, nil
	}

	var consecutive float64
	for i := 1; i < len(centroids); i++ {
		consecutive += centroids[i-1].DistanceTo(centroids[i])
	}
	report.AvgConsecutiveJump = consecutive / float64(len(centroids)-1)

	// fixed seed: identical inputs produce identical reports
	r := rand.New(rand.NewSource(int64(len(centroids))))
	perm := r.Perm(len(centroids))
	var random float64
	for i := 1; i < len(perm); i++ {
		random += centroids[perm[i-1]].DistanceTo(centroids[perm[i]])
	}
	report.AvgRandomJump = random / float64(len(perm)-1)

	if report.AvgRandomJump > 0 {
		report.Score = 1 - report.AvgConsecutiveJump/report.AvgRandomJump
		if report.Score < 0 {
			report.Score = 0
		}
		if report.Score > 1 {
			report.Score = 1
		}
	} else {
		// all centroids coincide: any order is as spatial as any other
		report.Score = 1
	}
	report.IsOrdered = report.Score >= threshold
	return report, nil
}
