package ziptie

// Combinator turns two co-occurring activities into an energy increment.
// It must return a finite, non-negative value for non-negative inputs;
// energies are accumulators and only ever grow between resets.
type Combinator func(a, b float64) float64

// GatedProduct returns the default co-activity rule: the product a*b when
// both activities exceed threshold, otherwise zero.
func GatedProduct(threshold float64) Combinator {
	return func(a, b float64) float64 {
		if a <= threshold || b <= threshold {
			return 0
		}
		return a * b
	}
}
