package objectpath

import "errors"

var (
	// ErrInvalidPath flags a path request that is structurally
	// unsatisfiable against the held document: a non-numeric or
	// out-of-range sequence index, descending into a scalar, or an
	// arbitrary-key request the mapping cannot answer. The wrapped
	// message names the offending segment and the container's shape.
	ErrInvalidPath = errors.New("objectpath: invalid path")

	// ErrUnsupported flags operations the held document cannot
	// support, such as re-serializing a non-mapping root.
	ErrUnsupported = errors.New("objectpath: unsupported operation")

	// ErrNotFound indicates a JSONPath query matched nothing.
	ErrNotFound = errors.New("objectpath: not found")
)

// IsInvalidPath reports whether err is, or wraps, ErrInvalidPath.
func IsInvalidPath(err error) bool {
	return errors.Is(err, ErrInvalidPath)
}

// IsNotFound reports whether err is, or wraps, ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
