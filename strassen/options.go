// SPDX-License-Identifier: MIT

// Package strassen: functional configuration for Engine, Multiply and Tune.
//
// Design goals:
//   - Deterministic behavior: no global state; the pool is an explicit object.
//   - Safe by construction: WithX panics only on nonsensical values (programmer
//     error); a threshold below 1 is a user error and surfaces as
//     ErrInvalidThreshold from NewEngine.
package strassen

// DefaultThreshold is the size at or below which classical multiplication is
// used when no WithThreshold option is given.
const DefaultThreshold = 64

// ---------- Internal panic messages (no magic strings) ----------

const panicNilPool = "strassen: WithPool: pool must be non-nil"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*options)

// options stores the effective configuration after applying Option setters.
type options struct {
	threshold int   // DefaultThreshold
	workers   int   // 0 ⇒ GOMAXPROCS; used only when pool == nil
	pool      *Pool // nil ⇒ a scoped pool is created and closed by the owner
}

// WithThreshold sets the classical-multiplication cutoff.
// Values below 1 are rejected by NewEngine with ErrInvalidThreshold.
func WithThreshold(t int) Option {
	return func(o *options) { o.threshold = t }
}

// WithWorkers sets the worker count of the pool created when no WithPool is
// given. n <= 0 means runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithPool runs tasks on a caller-owned pool. The engine never closes it.
// Panics if p is nil.
func WithPool(p *Pool) Option {
	if p == nil {
		panic(panicNilPool)
	}

	return func(o *options) { o.pool = p }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) options {
	o := options{threshold: DefaultThreshold}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
