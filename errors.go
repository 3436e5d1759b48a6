package gg

import "errors"

// Sentinel errors returned by the rasterization core. Callers use errors.Is
// to classify a failure into one of these kinds; wrapped context is added
// with fmt.Errorf("...: %w", ...) at the call site.
var (
	// ErrOutOfMemory is returned when an internal buffer (coverage buffer,
	// polygon edge list, pen vertex table) could not be sized for the
	// requested geometry.
	ErrOutOfMemory = errors.New("gg: out of memory")

	// ErrInvalidState is returned when an operation is attempted on a
	// Context or collaborator in a state that does not support it, such as
	// calling Fill on a path with an open (unclosed) subpath where one is
	// required.
	ErrInvalidState = errors.New("gg: invalid state")

	// ErrInvalidPathData is returned when path data violates the node-stream
	// well-formedness rules: a curve command before any MoveTo, NaN/Inf
	// coordinates, or a degenerate control structure that cannot be
	// flattened.
	ErrInvalidPathData = errors.New("gg: invalid path data")

	// ErrInvalidMatrix is returned when a transform operation that requires
	// an inverse (DeviceToUser, DeviceToUserDistance) is attempted on a
	// singular or near-singular matrix.
	ErrInvalidMatrix = errors.New("gg: invalid matrix")
)
