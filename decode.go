package objectpath

import (
	"fmt"
	"math"
	"mime"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// FromYAML decodes a YAML payload into an ObjectPath. Mapping key
// order is preserved as written. Decode failures are returned wrapped
// but otherwise unchanged.
func FromYAML(payload []byte) (*ObjectPath, error) {
	root, err := decodeOrdered(payload)
	if err != nil {
		return nil, fmt.Errorf("decode YAML document: %w", err)
	}
	return &ObjectPath{root: root}, nil
}

// FromJSON decodes a JSON payload into an ObjectPath. JSON is parsed
// through the YAML parser (JSON is a YAML subset) so object key order
// survives, which generic map decoding cannot guarantee.
func FromJSON(payload []byte) (*ObjectPath, error) {
	root, err := decodeOrdered(payload)
	if err != nil {
		return nil, fmt.Errorf("decode JSON document: %w", err)
	}
	return &ObjectPath{root: root}, nil
}

// FromContentType decodes payload according to its media type.
// Supported types are JSON and YAML; parameters such as charset are
// ignored.
func FromContentType(contentType string, payload []byte) (*ObjectPath, error) {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return nil, fmt.Errorf("parse content type %q: %w", contentType, err)
	}

	switch {
	case mediaType == "application/json" || strings.HasSuffix(mediaType, "+json"):
		return FromJSON(payload)
	case mediaType == "application/yaml" || mediaType == "application/x-yaml" ||
		mediaType == "text/yaml" || strings.HasSuffix(mediaType, "+yaml"):
		return FromYAML(payload)
	default:
		return nil, fmt.Errorf("%w: unsupported content type %q", ErrUnsupported, mediaType)
	}
}

// decodeOrdered parses payload into a document tree, preserving
// mapping insertion order via the YAML AST.
func decodeOrdered(payload []byte) (*Node, error) {
	file, err := parser.ParseBytes(payload, 0)
	if err != nil {
		return nil, err
	}

	if len(file.Docs) == 0 || file.Docs[0].Body == nil {
		return Null(), nil
	}
	if len(file.Docs) > 1 {
		return nil, fmt.Errorf("expected a single document, got %d", len(file.Docs))
	}

	d := &astDecoder{anchors: make(map[string]*Node)}
	return d.decode(file.Docs[0].Body)
}

// astDecoder walks the YAML AST, resolving anchors and aliases as it
// goes. Aliased nodes share the decoded subtree, which is safe because
// nodes are immutable.
type astDecoder struct {
	anchors map[string]*Node
}

func (d *astDecoder) decode(node ast.Node) (*Node, error) {
	switch n := node.(type) {
	case *ast.NullNode:
		return Null(), nil
	case *ast.StringNode:
		return Scalar(n.Value), nil
	case *ast.LiteralNode:
		return Scalar(n.Value.Value), nil
	case *ast.IntegerNode:
		return Scalar(n.Value), nil
	case *ast.FloatNode:
		return Scalar(n.Value), nil
	case *ast.BoolNode:
		return Scalar(n.Value), nil
	case *ast.InfinityNode:
		return Scalar(n.Value), nil
	case *ast.NanNode:
		return Scalar(math.NaN()), nil
	case *ast.MappingNode:
		entries := make([]Entry, 0, len(n.Values))
		for _, pair := range n.Values {
			entry, err := d.entry(pair)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}
		return Mapping(entries...), nil
	case *ast.MappingValueNode:
		entry, err := d.entry(n)
		if err != nil {
			return nil, err
		}
		return Mapping(entry), nil
	case *ast.SequenceNode:
		items := make([]*Node, 0, len(n.Values))
		for _, item := range n.Values {
			child, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			items = append(items, child)
		}
		return Sequence(items...), nil
	case *ast.TagNode:
		return d.decode(n.Value)
	case *ast.AnchorNode:
		value, err := d.decode(n.Value)
		if err != nil {
			return nil, err
		}
		if name, ok := n.Name.(*ast.StringNode); ok {
			d.anchors[name.Value] = value
		}
		return value, nil
	case *ast.AliasNode:
		name, ok := n.Value.(*ast.StringNode)
		if !ok {
			return nil, fmt.Errorf("alias name must be a string, got %T", n.Value)
		}
		value, ok := d.anchors[name.Value]
		if !ok {
			return nil, fmt.Errorf("undefined anchor %q", name.Value)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported document node %T", node)
	}
}

func (d *astDecoder) entry(pair *ast.MappingValueNode) (Entry, error) {
	key, err := mappingKey(pair.Key)
	if err != nil {
		return Entry{}, err
	}

	value, err := d.decode(pair.Value)
	if err != nil {
		return Entry{}, fmt.Errorf("invalid value for key %q: %w", key, err)
	}

	return Entry{Key: key, Value: value}, nil
}

// mappingKey stringifies scalar mapping keys, so `200: ok` is reachable
// as segment "200" the same way a string key would be.
func mappingKey(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, nil
	case *ast.IntegerNode:
		switch v := n.Value.(type) {
		case int64:
			return strconv.FormatInt(v, 10), nil
		case uint64:
			return strconv.FormatUint(v, 10), nil
		default:
			return "", fmt.Errorf("unexpected integer key value type: %T", n.Value)
		}
	case *ast.FloatNode:
		return strconv.FormatFloat(n.Value, 'f', -1, 64), nil
	case *ast.BoolNode:
		return strconv.FormatBool(n.Value), nil
	default:
		return "", fmt.Errorf("mapping key must be a scalar, got %T", node)
	}
}
