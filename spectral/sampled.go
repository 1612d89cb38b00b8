package spectral

import "fmt"

// SampledSF is a spectral function sampled at n regularly spaced bins
// across [lambdaMin, lambdaMax), each bin's value taken at its centre.
type SampledSF struct {
	lambdaMin float64
	lambdaMax float64
	n         int
	bins      []float64

	// FastSample selects, for both Sample and SampleMultiple, whether a
	// requested point/bin is resolved by interpolating the existing bin
	// centres (fast) or by re-integrating the piecewise-linear curve
	// through them (slow, the default).
	fastSample bool
}

// NewSampled builds a SampledSF with explicitly supplied bin values;
// len(bins) must equal n.
func NewSampled(lambdaMin, lambdaMax float64, n int, bins []float64, fastSample bool) (*SampledSF, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return nil, err
	}
	if err := validateBinCount(n); err != nil {
		return nil, err
	}
	if len(bins) != n {
		return nil, fmt.Errorf("%w: expected %d bin values, got %d", ErrInvalidArgument, n, len(bins))
	}

	binsCopy := append([]float64(nil), bins...)
	return &SampledSF{lambdaMin: lambdaMin, lambdaMax: lambdaMax, n: n, bins: binsCopy, fastSample: fastSample}, nil
}

// Kind reports SampledKind.
func (f *SampledSF) Kind() Kind { return SampledKind }

// LambdaMin returns the lower bound of the sampled range.
func (f *SampledSF) LambdaMin() float64 { return f.lambdaMin }

// LambdaMax returns the upper bound of the sampled range.
func (f *SampledSF) LambdaMax() float64 { return f.lambdaMax }

// N returns the number of bins.
func (f *SampledSF) N() int { return f.n }

// Bins returns the bin values in wavelength order. The caller must not
// mutate the returned slice.
func (f *SampledSF) Bins() []float64 { return f.bins }

// FastSample reports whether this function resolves queries by
// interpolating bin centres (true) or by re-integration (false).
func (f *SampledSF) FastSample() bool { return f.fastSample }

// delta returns the bin width.
func (f *SampledSF) delta() float64 { return (f.lambdaMax - f.lambdaMin) / float64(f.n) }

// controlPoints returns the bin-centre wavelengths and values, used as the
// anchor points for re-sampling this function at a different resolution.
func (f *SampledSF) controlPoints() (xs, ys []float64) {
	d := f.delta()
	xs = make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		xs[i] = f.lambdaMin + (float64(i)+0.5)*d
	}
	return xs, f.bins
}

// Sample returns the mean of the spectrum over [lambdaMin, lambdaMax] in
// slow mode, or the value at the bin centre in fast mode, resolved
// against this function's own bin centres/values.
func (f *SampledSF) Sample(lambdaMin, lambdaMax float64) (float64, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return 0, err
	}
	xs, ys := f.controlPoints()
	if f.fastSample {
		return sampleAt(xs, ys, (lambdaMin+lambdaMax)/2), nil
	}
	return integrateMean(xs, ys, lambdaMin, lambdaMax), nil
}

// SampleMultiple produces a SampledSF of n regularly spaced bins over
// [lambdaMin, lambdaMax]. If the request exactly matches this function's
// own (lambdaMin, lambdaMax, n), f itself is returned unchanged.
func (f *SampledSF) SampleMultiple(lambdaMin, lambdaMax float64, n int) (*SampledSF, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return nil, err
	}
	if err := validateBinCount(n); err != nil {
		return nil, err
	}

	if lambdaMin == f.lambdaMin && lambdaMax == f.lambdaMax && n == f.n {
		return f, nil
	}

	xs, ys := f.controlPoints()
	delta := (lambdaMax - lambdaMin) / float64(n)
	bins := make([]float64, n)
	for i := 0; i < n; i++ {
		binLo := lambdaMin + float64(i)*delta
		binHi := binLo + delta
		if f.fastSample {
			bins[i] = sampleAt(xs, ys, binLo+0.5*delta)
		} else {
			bins[i] = integrateMean(xs, ys, binLo, binHi)
		}
	}

	return &SampledSF{lambdaMin: lambdaMin, lambdaMax: lambdaMax, n: n, bins: bins, fastSample: f.fastSample}, nil
}
