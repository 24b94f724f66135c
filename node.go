package objectpath

import (
	"encoding/json"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
)

// Kind identifies the variant held by a Node.
type Kind uint8

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Node is one vertex of a decoded document tree. Nodes are immutable
// after construction; evaluation never mutates them.
type Node struct {
	kind    Kind
	scalar  any
	items   []*Node
	entries []Entry
	index   map[string]int
}

// Entry is a single key/value pair of a mapping node. Entries keep
// document insertion order.
type Entry struct {
	Key   string
	Value *Node
}

// Null returns a node holding an explicit null value.
func Null() *Node {
	return &Node{kind: KindNull}
}

// Scalar returns a node holding a leaf value (string, bool, number or
// any opaque value).
func Scalar(value any) *Node {
	return &Node{kind: KindScalar, scalar: value}
}

// Sequence returns a node holding the given items in order.
func Sequence(items ...*Node) *Node {
	return &Node{kind: KindSequence, items: items}
}

// Mapping returns a node holding the given entries in order. A
// duplicate key replaces the earlier value but keeps its original
// position.
func Mapping(entries ...Entry) *Node {
	node := &Node{
		kind:    KindMapping,
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, entry := range entries {
		if at, ok := node.index[entry.Key]; ok {
			node.entries[at].Value = entry.Value
			continue
		}
		node.index[entry.Key] = len(node.entries)
		node.entries = append(node.entries, entry)
	}

	return node
}

// NewNode builds a document tree from plain Go values as produced by
// generic JSON/YAML decoders. Plain maps carry no order, so their keys
// are sorted to keep the result deterministic; use the payload
// constructors or yaml.MapSlice input when insertion order matters.
// Unrecognized values become opaque scalars.
func NewNode(value any) *Node {
	switch v := value.(type) {
	case nil:
		return Null()
	case *Node:
		return v
	case map[string]any:
		entries := make([]Entry, 0, len(v))
		for _, key := range slices.Sorted(maps.Keys(v)) {
			entries = append(entries, Entry{Key: key, Value: NewNode(v[key])})
		}
		return Mapping(entries...)
	case yaml.MapSlice:
		entries := make([]Entry, 0, len(v))
		for _, item := range v {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}
			entries = append(entries, Entry{Key: key, Value: NewNode(item.Value)})
		}
		return Mapping(entries...)
	case []any:
		items := make([]*Node, 0, len(v))
		for _, item := range v {
			items = append(items, NewNode(item))
		}
		return Sequence(items...)
	default:
		return Scalar(v)
	}
}

// Kind reports the variant held by the node.
func (n *Node) Kind() Kind {
	return n.kind
}

// IsNull reports whether the node holds an explicit null.
func (n *Node) IsNull() bool {
	return n.kind == KindNull
}

// Value returns the scalar value, or nil for non-scalar nodes.
func (n *Node) Value() any {
	if n.kind != KindScalar {
		return nil
	}
	return n.scalar
}

// Len returns the number of items of a sequence or entries of a
// mapping, and 0 for other kinds.
func (n *Node) Len() int {
	switch n.kind {
	case KindSequence:
		return len(n.items)
	case KindMapping:
		return len(n.entries)
	default:
		return 0
	}
}

// Item returns the sequence element at index i.
// It panics when the node is not a sequence or i is out of range,
// matching slice semantics; Evaluate performs checked access.
func (n *Node) Item(i int) *Node {
	if n.kind != KindSequence {
		panic("objectpath: Item on " + n.kind.String() + " node")
	}
	return n.items[i]
}

// Get returns the mapping value for key and whether the key is
// present. It reports false for non-mapping nodes.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindMapping {
		return nil, false
	}
	at, ok := n.index[key]
	if !ok {
		return nil, false
	}
	return n.entries[at].Value, true
}

// Keys returns mapping keys in insertion order.
func (n *Node) Keys() []string {
	if n.kind != KindMapping {
		return nil
	}
	keys := make([]string, 0, len(n.entries))
	for _, entry := range n.entries {
		keys = append(keys, entry.Key)
	}
	return keys
}

// Entries returns a copy of the mapping entries in insertion order.
func (n *Node) Entries() []Entry {
	if n.kind != KindMapping {
		return nil
	}
	return slices.Clone(n.entries)
}

// Interface converts the tree back into plain Go values: map[string]any
// for mappings (insertion order is lost), []any for sequences, the
// held value for scalars and nil for nulls. json.Number scalars are
// kept as-is.
func (n *Node) Interface() any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindNull:
		return nil
	case KindScalar:
		return n.scalar
	case KindSequence:
		items := make([]any, 0, len(n.items))
		for _, item := range n.items {
			items = append(items, item.Interface())
		}
		return items
	case KindMapping:
		values := make(map[string]any, len(n.entries))
		for _, entry := range n.entries {
			values[entry.Key] = entry.Value.Interface()
		}
		return values
	default:
		return nil
	}
}

// MarshalYAML renders the tree as plain values with mapping order
// preserved, so goccy/go-yaml encodes nodes directly.
func (n *Node) MarshalYAML() (any, error) {
	return n.ordered(), nil
}

// ordered mirrors Interface but keeps mapping insertion order by
// emitting yaml.MapSlice values.
func (n *Node) ordered() any {
	if n == nil {
		return nil
	}
	switch n.kind {
	case KindScalar:
		if num, ok := n.scalar.(json.Number); ok {
			if i, err := num.Int64(); err == nil {
				return i
			}
			if f, err := num.Float64(); err == nil {
				return f
			}
			return num.String()
		}
		return n.scalar
	case KindSequence:
		items := make([]any, 0, len(n.items))
		for _, item := range n.items {
			items = append(items, item.ordered())
		}
		return items
	case KindMapping:
		values := make(yaml.MapSlice, 0, len(n.entries))
		for _, entry := range n.entries {
			values = append(values, yaml.MapItem{Key: entry.Key, Value: entry.Value.ordered()})
		}
		return values
	default:
		return nil
	}
}
