package spectral

import "fmt"

// InterpolatedSF is a spectral function defined by irregularly spaced
// (wavelength, value) anchor pairs, linearly interpolated between anchors
// and linearly extrapolated outside them.
type InterpolatedSF struct {
	wavelengths []float64
	samples     []float64
	fastSample  bool
}

// NewInterpolated builds an InterpolatedSF from parallel wavelength/value
// arrays. wavelengths must be strictly increasing and the two arrays must
// have equal, non-zero length, or ErrInvalidArgument is returned.
func NewInterpolated(wavelengths, samples []float64, fastSample bool) (*InterpolatedSF, error) {
	if len(wavelengths) == 0 || len(wavelengths) != len(samples) {
		return nil, fmt.Errorf("%w: wavelength and sample arrays must have equal, non-zero length (got %d, %d)",
			ErrInvalidArgument, len(wavelengths), len(samples))
	}
	for i, w := range wavelengths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: wavelength must be positive, got %v at index %d", ErrInvalidArgument, w, i)
		}
		if i > 0 && w <= wavelengths[i-1] {
			return nil, fmt.Errorf("%w: wavelengths must be strictly increasing (index %d: %v <= %v)",
				ErrInvalidArgument, i, w, wavelengths[i-1])
		}
	}

	wCopy := append([]float64(nil), wavelengths...)
	sCopy := append([]float64(nil), samples...)
	return &InterpolatedSF{wavelengths: wCopy, samples: sCopy, fastSample: fastSample}, nil
}

// Kind reports InterpolatedKind.
func (f *InterpolatedSF) Kind() Kind { return InterpolatedKind }

// Sample returns the mean of the spectrum over [lambdaMin, lambdaMax] in
// slow mode, or the interpolated value at the bin centre in fast mode.
func (f *InterpolatedSF) Sample(lambdaMin, lambdaMax float64) (float64, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return 0, err
	}
	if f.fastSample {
		return sampleAt(f.wavelengths, f.samples, (lambdaMin+lambdaMax)/2), nil
	}
	return integrateMean(f.wavelengths, f.samples, lambdaMin, lambdaMax), nil
}

// SampleMultiple produces n regularly spaced bins over [lambdaMin,
// lambdaMax]. Each bin is the interpolated value at its centre in fast
// mode, or the piecewise-linear integral mean over the bin in slow mode.
func (f *InterpolatedSF) SampleMultiple(lambdaMin, lambdaMax float64, n int) (*SampledSF, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return nil, err
	}
	if err := validateBinCount(n); err != nil {
		return nil, err
	}

	delta := (lambdaMax - lambdaMin) / float64(n)
	bins := make([]float64, n)
	for i := 0; i < n; i++ {
		binLo := lambdaMin + float64(i)*delta
		binHi := binLo + delta
		if f.fastSample {
			bins[i] = sampleAt(f.wavelengths, f.samples, binLo+0.5*delta)
		} else {
			bins[i] = integrateMean(f.wavelengths, f.samples, binLo, binHi)
		}
	}

	return &SampledSF{lambdaMin: lambdaMin, lambdaMax: lambdaMax, n: n, bins: bins, fastSample: f.fastSample}, nil
}
