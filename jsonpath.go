package objectpath

import (
	"fmt"

	"github.com/theory/jsonpath"
)

// JSONPath selects the first value matching an RFC 9535 JSONPath
// expression from the held document. It is an escape hatch beside the
// dotted syntax for the cases that need wildcards or filters; results
// are plain Go values and mapping order is not preserved. ErrNotFound
// is returned when nothing matches.
func (p *ObjectPath) JSONPath(expr string) (any, error) {
	if expr == "" {
		return nil, fmt.Errorf("%w: JSONPath expression is empty", ErrInvalidPath)
	}

	path, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSONPath %s: %v", ErrInvalidPath, expr, err)
	}

	results := path.Select(p.root.Interface())
	if len(results) > 0 {
		return results[0], nil
	}

	return nil, ErrNotFound
}
