package spectral

import "errors"

// ErrInvalidArgument is returned for malformed spectral queries: a
// non-positive wavelength, an inverted or degenerate [lo, hi] range, a
// non-positive bin count, or mismatched anchor-array lengths.
var ErrInvalidArgument = errors.New("spectral: invalid argument")
