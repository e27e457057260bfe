package signal

import (
	"github.com/hupe1980/radiogo/model"
)

// Func is a function type for fingerprint distance calculation.
type Func func(a, b *model.Fingerprint) float64

// Distance calculates the squared signal distance between two fingerprints:
// the sum, over every pair of readings sharing a radio source identifier, of
// the squared difference of their signal values.
//
// Fingerprints with no source in common are at distance 0: without overlap
// they are indistinguishable by signal content, and other fingerprints in
// the library are relied on to provide a signal. If a source appears more
// than once in either fingerprint, every cross-pair contributes.
//
// The result is always >= 0 and symmetric in its arguments. Nil fingerprints
// are treated as empty.
func Distance(a, b *model.Fingerprint) float64 {
	ra, rb := a.Readings(), b.Readings()
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}

	// Group the smaller side by source so the scan over the larger side is
	// one map lookup per reading. Cross-pair semantics are unaffected by
	// which side is grouped.
	if len(rb) < len(ra) {
		ra, rb = rb, ra
	}

	bySource := make(map[string][]float64, len(ra))
	for _, r := range ra {
		id := r.Source().Identifier()
		bySource[id] = append(bySource[id], r.Value())
	}

	var sum float64
	for _, r := range rb {
		values, ok := bySource[r.Source().Identifier()]
		if !ok {
			continue
		}
		v := r.Value()
		for _, w := range values {
			d := v - w
			sum += d * d
		}
	}

	return sum
}
