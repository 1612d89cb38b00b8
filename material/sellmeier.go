package material

import (
	"fmt"
	"math"
)

// resonanceEpsilon bounds how close a wavelength's w^2 term may come to a
// Sellmeier coefficient c_i before IndexChecked treats it as straddling a
// resonance pole.
const resonanceEpsilon = 1e-9

// Sellmeier is the closed-form dispersion model
//
//	n(lambda) = sqrt(1 + sum_i b_i*w^2 / (w^2 - c_i))
//
// where w = lambda*1e-3 (lambda in nanometres, w in micrometres). It
// implements Function1D.
//
// TODO: Index does not guard against w^2 approaching a c_i (a
// near-resonance wavelength outside the glass's calibration range), per
// spec; callers who need that guard can use IndexChecked instead.
type Sellmeier struct {
	B1, B2, B3 float64
	C1, C2, C3 float64
}

// NewSellmeier builds a Sellmeier model from its six coefficients.
func NewSellmeier(b1, b2, b3, c1, c2, c3 float64) *Sellmeier {
	return &Sellmeier{B1: b1, B2: b2, B3: b3, C1: c1, C2: c2, C3: c3}
}

// Index evaluates n(lambda). No error is raised near a resonance pole.
func (s *Sellmeier) Index(lambdaNM float64) float64 {
	w2 := lambdaNM * lambdaNM * 1e-6
	sum := s.B1*w2/(w2-s.C1) + s.B2*w2/(w2-s.C2) + s.B3*w2/(w2-s.C3)
	return math.Sqrt(1 + sum)
}

// IndexChecked evaluates n(lambda) like Index, but returns
// ErrNumericBoundary instead of a near-infinite value when w^2 sits within
// resonanceEpsilon of any of c1, c2, c3.
func (s *Sellmeier) IndexChecked(lambdaNM float64) (float64, error) {
	w2 := lambdaNM * lambdaNM * 1e-6
	for i, c := range [3]float64{s.C1, s.C2, s.C3} {
		if math.Abs(w2-c) < resonanceEpsilon {
			return 0, fmt.Errorf("%w: coefficient c%d at lambda=%v", ErrNumericBoundary, i+1, lambdaNM)
		}
	}
	return s.Index(lambdaNM), nil
}
