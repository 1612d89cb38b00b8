package spectral

// ConstantSF is a spectral function with a single value at every
// wavelength. It caches the last SampledSF it produced and returns it
// again when sample_multiple is called with an identical request shape.
type ConstantSF struct {
	value float64

	cached   *SampledSF
	cacheLo  float64
	cacheHi  float64
	cacheN   int
	hasCache bool
}

// NewConstant builds a constant spectral function with value v.
func NewConstant(v float64) *ConstantSF {
	return &ConstantSF{value: v}
}

// Kind reports ConstantKind.
func (f *ConstantSF) Kind() Kind { return ConstantKind }

// Value returns the constant's scalar value.
func (f *ConstantSF) Value() float64 { return f.value }

// Sample returns the constant value for any valid [lambdaMin, lambdaMax].
func (f *ConstantSF) Sample(lambdaMin, lambdaMax float64) (float64, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return 0, err
	}
	return f.value, nil
}

// SampleMultiple returns n bins all equal to the constant value. If the
// requested (lambdaMin, lambdaMax, n) matches the previous call, the
// cached SampledSF is returned unchanged.
func (f *ConstantSF) SampleMultiple(lambdaMin, lambdaMax float64, n int) (*SampledSF, error) {
	if err := validateRange(lambdaMin, lambdaMax); err != nil {
		return nil, err
	}
	if err := validateBinCount(n); err != nil {
		return nil, err
	}

	if f.hasCache && f.cacheLo == lambdaMin && f.cacheHi == lambdaMax && f.cacheN == n {
		return f.cached, nil
	}

	bins := make([]float64, n)
	for i := range bins {
		bins[i] = f.value
	}
	sf := &SampledSF{lambdaMin: lambdaMin, lambdaMax: lambdaMax, n: n, bins: bins}

	f.cached, f.cacheLo, f.cacheHi, f.cacheN, f.hasCache = sf, lambdaMin, lambdaMax, n, true
	return sf, nil
}
