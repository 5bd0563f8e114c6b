// SPDX-License-Identifier: MIT

package strassen

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/katalvlaran/strassen/matrix"
)

// Operation tags for error wrapping.
const (
	opMultiply = "Multiply"
	opCompute  = "compute"
)

// Engine multiplies square power-of-two matrices with Strassen's recursion,
// forking the seven sub-products of every level onto its Pool.
// An Engine is safe for concurrent use; concurrent calls share the pool.
type Engine struct {
	pool      *Pool
	ownsPool  bool
	threshold int
	trace     tracing.Trace
}

// NewEngine validates the options and binds the engine to a pool.
// Without WithPool the engine creates its own pool; release it with Close.
//
// Errors:
//   - ErrInvalidThreshold if the threshold is below 1.
//   - ErrPoolClosed if WithPool supplied a closed pool.
func NewEngine(opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)
	if o.threshold < 1 {
		return nil, fmt.Errorf("NewEngine: threshold %d: %w", o.threshold, ErrInvalidThreshold)
	}
	e := &Engine{pool: o.pool, threshold: o.threshold, trace: tracer()}
	if e.pool == nil {
		e.pool = NewPool(o.workers)
		e.ownsPool = true
	}
	if e.pool.Closed() {
		return nil, fmt.Errorf("NewEngine: %w", ErrPoolClosed)
	}

	return e, nil
}

// Threshold returns the classical-multiplication cutoff.
func (e *Engine) Threshold() int { return e.threshold }

// Pool returns the pool the engine schedules on.
func (e *Engine) Pool() *Pool { return e.pool }

// Close releases the pool if the engine created it. Caller-owned pools
// passed with WithPool stay open.
func (e *Engine) Close() {
	if e.ownsPool {
		e.pool.Close()
	}
}

// Multiply returns A×B for square A and B of equal power-of-two extent.
func (e *Engine) Multiply(a, b *matrix.Dense) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	return e.multiply(a, b, a.Rows())
}

// Multiply computes the size×size product A×B with Strassen's algorithm,
// switching to classical multiplication at or below threshold.
//
// Implementation:
//   - Stage 1: validate operands, size and threshold; nothing is computed on error.
//   - Stage 2: run the recursion on the pool given by WithPool, or on a pool
//     created for this call and closed when it returns.
//
// Errors:
//   - ErrInvalidThreshold (threshold < 1).
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     (A and B differ, or size differs from their extent), matrix.ErrNotPowerOfTwo.
//   - ErrPoolClosed, ErrTaskPanicked.
//
// Complexity:
//   - Time O(size^log2(7)) above the threshold; O(size²) extra memory per level.
func Multiply(a, b *matrix.Dense, size, threshold int, opts ...Option) (*matrix.Dense, error) {
	e, err := NewEngine(append(append([]Option(nil), opts...), WithThreshold(threshold))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	defer e.Close()

	return e.multiply(a, b, size)
}

// validate enforces the operand contract in a fixed order:
// nil → square → equal extents → size → power of two → pool state.
func (e *Engine) validate(a, b *matrix.Dense, size int) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return fmt.Errorf("A: %w", err)
	}
	if err := matrix.ValidateSquareNonNil(b); err != nil {
		return fmt.Errorf("B: %w", err)
	}
	if a.Rows() != b.Rows() {
		return fmt.Errorf("A is %d, B is %d: %w", a.Rows(), b.Rows(), matrix.ErrDimensionMismatch)
	}
	if size != a.Rows() {
		return fmt.Errorf("size %d for %d×%d operands: %w", size, a.Rows(), a.Rows(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidatePowerOfTwo(size); err != nil {
		return err
	}
	if e.pool.Closed() {
		return ErrPoolClosed
	}

	return nil
}

func (e *Engine) multiply(a, b *matrix.Dense, size int) (*matrix.Dense, error) {
	if err := e.validate(a, b, size); err != nil {
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}
	e.trace.Infof("strassen: multiply %d×%d, threshold=%d, workers=%d", size, size, e.threshold, e.pool.Workers())
	e.trace.Debugf("strassen: %d split levels, leaves of %d", splitLevels(size, e.threshold), leafSize(size, e.threshold))

	c, err := e.compute(task{a: a, b: b, size: size})
	if err != nil {
		e.trace.Errorf("strassen: multiply %d×%d failed: %v", size, size, err)
		return nil, fmt.Errorf("%s: %w", opMultiply, err)
	}

	return c, nil
}

// splitLevels returns how many times size is halved before reaching threshold.
func splitLevels(size, threshold int) int {
	n := 0
	for ; size > threshold; size /= 2 {
		n++
	}

	return n
}

// leafSize returns the extent of the classical multiplications.
func leafSize(size, threshold int) int {
	for size > threshold {
		size /= 2
	}

	return size
}

// task is one recursive multiplication: two owned size×size operands.
type task struct {
	a, b *matrix.Dense
	size int
}

// compute runs one level of the recursion. At or below the threshold it
// multiplies classically; otherwise it splits both operands, forms the seven
// operand pairs eagerly, forks the seven products, joins them all and then
// assembles the quadrants. compute may run on a forked goroutine and must not
// trace; tracing happens in multiply on the calling goroutine.
func (e *Engine) compute(t task) (*matrix.Dense, error) {
	if t.size <= e.threshold {
		e.pool.leaves.Add(1)
		return matrix.MultiplyClassical(t.a, t.b, 0, 0, 0, 0, t.size)
	}

	half := t.size / 2
	qa, err := matrix.Split(t.a)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opCompute, t.size, err)
	}
	qb, err := matrix.Split(t.b)
	if err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opCompute, t.size, err)
	}
	a11, a12, a21, a22 := qa[matrix.TopLeft], qa[matrix.TopRight], qa[matrix.BottomLeft], qa[matrix.BottomRight]
	b11, b12, b21, b22 := qb[matrix.TopLeft], qb[matrix.TopRight], qb[matrix.BottomLeft], qb[matrix.BottomRight]

	// Operand sums are computed synchronously; only the products are forked.
	var alg algebra
	children := [7]task{
		{a: alg.add(a11, a22), b: alg.add(b11, b22), size: half}, // P1
		{a: alg.add(a21, a22), b: b11, size: half},               // P2
		{a: a11, b: alg.sub(b12, b22), size: half},               // P3
		{a: a22, b: alg.sub(b21, b11), size: half},               // P4
		{a: alg.add(a11, a12), b: b22, size: half},               // P5
		{a: alg.sub(a21, a11), b: alg.add(b11, b12), size: half}, // P6
		{a: alg.sub(a12, a22), b: alg.add(b21, b22), size: half}, // P7
	}
	if alg.err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opCompute, t.size, alg.err)
	}

	var p [7]*matrix.Dense
	fj := e.pool.newForkJoin()
	for i := range children {
		i := i // per-iteration copy for the forked closure (go < 1.22)
		fj.fork(func() error {
			r, err := e.compute(children[i])
			if err != nil {
				return err
			}
			p[i] = r
			return nil
		})
	}
	if err := fj.join(); err != nil {
		return nil, err
	}

	p1, p2, p3, p4, p5, p6, p7 := p[0], p[1], p[2], p[3], p[4], p[5], p[6]
	c11 := alg.combine([]*matrix.Dense{p1, p4, p7, p5}, []int64{1, 1, 1, -1})
	c12 := alg.add(p3, p5)
	c21 := alg.add(p2, p4)
	c22 := alg.combine([]*matrix.Dense{p1, p3, p6, p2}, []int64{1, 1, 1, -1})
	if alg.err != nil {
		return nil, fmt.Errorf("%s(%d): %w", opCompute, t.size, alg.err)
	}

	return matrix.CombineQuadrants(c11, c12, c21, c22, half)
}

// algebra chains matrix operations and keeps the first error; once an error
// is recorded every further call is a no-op returning nil.
type algebra struct{ err error }

func (g *algebra) add(x, y *matrix.Dense) *matrix.Dense {
	if g.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, g.err = matrix.Add(x, y)

	return r
}

func (g *algebra) sub(x, y *matrix.Dense) *matrix.Dense {
	if g.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, g.err = matrix.Sub(x, y)

	return r
}

func (g *algebra) combine(terms []*matrix.Dense, signs []int64) *matrix.Dense {
	if g.err != nil {
		return nil
	}
	var r *matrix.Dense
	r, g.err = matrix.Combine(terms, signs)

	return r
}
