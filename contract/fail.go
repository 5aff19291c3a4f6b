// Package contract exposes the minimal failure interface used by other packages.
//
// Implementations must render their whole cause chain from Error and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

// Fail is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Return a non-empty Message() describing only their own level.
//   - Render the full cause chain from Error().
//   - Return the direct cause (or nil) from Source().
//   - Support errors.Unwrap via Unwrap().
type Fail interface {
	error
	Message() string
	// Source returns the underlying cause; nil when this is the innermost failure.
	Source() error
	Unwrap() error
}
