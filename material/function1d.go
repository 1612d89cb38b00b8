package material

// Function1D is a 1D wavelength (nanometres) -> index-of-refraction
// evaluator, consumed by Dielectric for n(lambda). Unlike
// spectral.Function it is evaluated at a single point, not integrated
// over a range, and never returns an error for an out-of-calibration
// wavelength (see Sellmeier.Index).
type Function1D interface {
	Index(lambdaNM float64) float64
}

// Function2D is reserved for the bulk transmission lookup keyed by
// wavelength and path length. It is currently unused: Dielectric.
// EvaluateVolume passes its input spectrum through unchanged rather than
// consulting it. Kept as part of the material's constructor surface so a
// caller supplying one today will not need a breaking change when bulk
// attenuation is implemented.
type Function2D interface {
	Evaluate(lambdaNM, distance float64) float64
}

// Function1DFunc adapts a plain func to Function1D, mirroring the
// standard library's http.HandlerFunc pattern so callers can supply a raw
// callable without defining a named type.
type Function1DFunc func(lambdaNM float64) float64

// Index calls f.
func (f Function1DFunc) Index(lambdaNM float64) float64 { return f(lambdaNM) }
