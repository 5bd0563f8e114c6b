/*
Package strassen multiplies square integer matrices with Strassen's
divide-and-conquer algorithm, running the seven sub-products of every level as
parallel fork-join tasks.

For A = [A11 A12; A21 A22] and B = [B11 B12; B21 B22]:

	P1 = (A11 + A22)(B11 + B22)
	P2 = (A21 + A22)B11
	P3 = A11(B12 - B22)
	P4 = A22(B21 - B11)
	P5 = (A11 + A12)B22
	P6 = (A21 - A11)(B11 + B12)
	P7 = (A12 - A22)(B21 + B22)

	C11 = P1 + P4 + P7 - P5
	C12 = P3 + P5
	C21 = P2 + P4
	C22 = P1 + P3 + P6 - P2

Extents must be powers of two. At or below the threshold the engine switches
to the classical triple loop; the threshold changes speed, never the result.

Usage:

	pool := strassen.NewPool(0) // GOMAXPROCS workers
	defer pool.Close()

	c, err := strassen.Multiply(a, b, a.Rows(), 64, strassen.WithPool(pool))

Tracing goes to the schuko tracer selected by key "strassen".
*/
package strassen

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'strassen'
func tracer() tracing.Trace {
	return tracing.Select("strassen")
}
