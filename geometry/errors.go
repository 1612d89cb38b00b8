// Package geometry provides the bounding-box and item types the kd-tree
// builds and queries over.
package geometry

import "errors"

// ErrInvalidArgument reports an out-of-range or otherwise malformed
// geometry argument. No function in this package returns it.
var ErrInvalidArgument = errors.New("geometry: invalid argument")
