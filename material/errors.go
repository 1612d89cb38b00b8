package material

import "errors"

var (
	// ErrInvalidArgument is returned when a dielectric material is
	// constructed with a nil index function or an out-of-range cutoff.
	ErrInvalidArgument = errors.New("material: invalid argument")

	// ErrNumericBoundary is returned by Sellmeier.IndexChecked when the
	// requested wavelength sits on (or within floating-point epsilon of)
	// one of the dispersion formula's resonance poles. Index itself never
	// returns it; see Sellmeier's doc comment.
	ErrNumericBoundary = errors.New("material: wavelength crosses a Sellmeier resonance pole")
)
