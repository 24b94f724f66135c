// Package objectpath extracts values from parsed JSON/YAML-shaped
// documents using dotted path expressions, with per-segment variable
// substitution from a stash. It is meant for test harnesses that need
// "the value at a.b.2.c" without hand-written tree walking.
package objectpath

import (
	"fmt"
	"strconv"

	"github.com/jacoelho/objectpath/internal/dotpath"
)

// ArbitraryKey is the reserved path segment that resolves to an
// existing key of the current mapping when the caller does not know
// any key in advance. It is recognized only against mapping nodes.
const ArbitraryKey = "_arbitrary_key_"

// Stash supplies substitution values consulted for every path segment.
// A segment equal to a registered key is replaced by the stringified
// stored value before lookup. Value must fail for keys Contains does
// not report.
type Stash interface {
	Contains(key string) bool
	Value(key string) (any, error)
}

// ObjectPath holds a document tree and answers path queries against
// it. The tree is read-only after construction, so concurrent queries
// against the same ObjectPath are safe as long as the stash passed to
// EvaluateWith is not mutated during the call.
type ObjectPath struct {
	root *Node
}

// New holds the given document. The value may be a *Node or any plain
// Go value accepted by NewNode.
func New(value any) *ObjectPath {
	return &ObjectPath{root: NewNode(value)}
}

// Root returns the held document tree.
func (p *ObjectPath) Root() *Node {
	return p.root
}

// Evaluate resolves path against the held document without variable
// substitution. See EvaluateWith.
func (p *ObjectPath) Evaluate(path string) (*Node, error) {
	return p.EvaluateWith(path, nil)
}

// EvaluateWith resolves path against the held document, replacing each
// segment registered in stash with the stringified stored value before
// lookup. It returns the located node, or nil when a mapping lookup
// missed (or hit an explicit null) at any segment; once that happens
// remaining segments are not processed and cannot raise errors. A
// structurally unsatisfiable request fails with an error wrapping
// ErrInvalidPath. The empty path returns the document root.
func (p *ObjectPath) EvaluateWith(path string, stash Stash) (*Node, error) {
	current := p.root
	for _, segment := range dotpath.Parse(path) {
		if current == nil || current.kind == KindNull {
			return nil, nil
		}

		if stash != nil && stash.Contains(segment) {
			value, err := stash.Value(segment)
			if err != nil {
				return nil, fmt.Errorf("substitute segment [%s]: %w", segment, err)
			}
			segment = fmt.Sprintf("%v", value)
		}

		next, err := descend(current, segment)
		if err != nil {
			return nil, err
		}
		current = next
	}

	if current != nil && current.kind == KindNull {
		return nil, nil
	}
	return current, nil
}

// Evaluate builds an ObjectPath over value and resolves path against
// it, without variable substitution.
func Evaluate(value any, path string) (*Node, error) {
	return New(value).Evaluate(path)
}

// descend resolves a single already-substituted segment against the
// current node. A mapping miss returns (nil, nil); the caller's loop
// turns that into a null result.
func descend(current *Node, segment string) (*Node, error) {
	switch current.kind {
	case KindMapping:
		if segment == ArbitraryKey {
			if current.Len() == 0 {
				return nil, fmt.Errorf("%w: requested [%s] but the mapping was empty", ErrInvalidPath, segment)
			}
			if _, ok := current.Get(segment); ok {
				return nil, fmt.Errorf("%w: requested meta-key [%s] but the mapping unexpectedly contains this key", ErrInvalidPath, segment)
			}
			return Scalar(current.entries[0].Key), nil
		}

		value, ok := current.Get(segment)
		if !ok {
			return nil, nil
		}
		return value, nil

	case KindSequence:
		index, err := strconv.Atoi(segment)
		if err != nil {
			return nil, fmt.Errorf("%w: element was a sequence, but [%s] was not numeric", ErrInvalidPath, segment)
		}
		if index < 0 || index >= len(current.items) {
			return nil, fmt.Errorf("%w: element was a sequence with %d elements, but [%s] was out of bounds", ErrInvalidPath, len(current.items), segment)
		}
		return current.items[index], nil

	default:
		return nil, fmt.Errorf("%w: no value found for [%s] within %s node", ErrInvalidPath, segment, current.kind)
	}
}
