// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"
	"time"

	"github.com/katalvlaran/strassen/matrix"
)

// Timing is the measured wall time of one threshold candidate.
type Timing struct {
	Threshold int
	Elapsed   time.Duration
}

// TuneResult reports every measured candidate and the fastest one.
type TuneResult struct {
	Best    int      // fastest threshold; ties go to the smaller threshold
	Timings []Timing // in candidate order
	Product *matrix.Dense
}

// Tune multiplies A×B once per candidate threshold on a shared pool and
// returns the fastest candidate. Every candidate must produce the same
// product; a difference fails the sweep with ErrThresholdDivergence.
// WithThreshold is ignored here; WithPool and WithWorkers apply.
//
// Errors:
//   - ErrNoCandidates, ErrInvalidThreshold (a candidate below 1),
//     ErrThresholdDivergence, and every error of Multiply.
//
// Complexity:
//   - One full multiplication per candidate.
func Tune(a, b *matrix.Dense, candidates []int, opts ...Option) (TuneResult, error) {
	var res TuneResult
	if len(candidates) == 0 {
		return res, fmt.Errorf("Tune: %w", ErrNoCandidates)
	}
	for _, c := range candidates {
		if c < 1 {
			return res, fmt.Errorf("Tune: candidate %d: %w", c, ErrInvalidThreshold)
		}
	}
	if err := matrix.ValidateNotNil(a); err != nil {
		return res, fmt.Errorf("Tune: %w", err)
	}

	o := gatherOptions(opts...)
	pool := o.pool
	if pool == nil {
		pool = NewPool(o.workers)
		defer pool.Close()
	}

	trace := tracer()
	res.Timings = make([]Timing, 0, len(candidates))
	for i, c := range candidates {
		e, err := NewEngine(WithPool(pool), WithThreshold(c))
		if err != nil {
			return TuneResult{}, fmt.Errorf("Tune: %w", err)
		}
		start := time.Now()
		product, err := e.Multiply(a, b)
		elapsed := time.Since(start)
		if err != nil {
			return TuneResult{}, fmt.Errorf("Tune: threshold %d: %w", c, err)
		}
		trace.Infof("strassen: tune threshold=%d took %s", c, elapsed)

		if i == 0 {
			res.Product = product
		} else if !product.Equal(res.Product) {
			return TuneResult{}, fmt.Errorf("Tune: thresholds %d and %d: %w", candidates[0], c, ErrThresholdDivergence)
		}
		res.Timings = append(res.Timings, Timing{Threshold: c, Elapsed: elapsed})
	}
	res.Best = fastest(res.Timings)

	return res, nil
}

// fastest picks the minimum elapsed time, breaking ties by smaller threshold.
func fastest(ts []Timing) int {
	best := ts[0]
	for _, t := range ts[1:] {
		if t.Elapsed < best.Elapsed || (t.Elapsed == best.Elapsed && t.Threshold < best.Threshold) {
			best = t
		}
	}

	return best.Threshold
}
