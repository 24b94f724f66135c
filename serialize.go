package objectpath

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// EncodeYAML writes the held document to w as YAML, keys in insertion
// order. Only whole-document mapping roots are representable as an
// output document; anything else (including sub-nodes located by a
// prior evaluation and re-wrapped) fails with ErrUnsupported.
func (p *ObjectPath) EncodeYAML(w io.Writer) error {
	document, err := p.document()
	if err != nil {
		return err
	}

	payload, err := yaml.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode YAML: %w", err)
	}

	_, err = w.Write(payload)
	return err
}

// EncodeJSON writes the held document to w as JSON, keys in insertion
// order. The same mapping-root restriction as EncodeYAML applies.
func (p *ObjectPath) EncodeJSON(w io.Writer) error {
	document, err := p.document()
	if err != nil {
		return err
	}

	intermediate, err := yaml.Marshal(document)
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	payload, err := yaml.YAMLToJSON(intermediate)
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}

	_, err = w.Write(payload)
	return err
}

func (p *ObjectPath) document() (yaml.MapSlice, error) {
	if p.root == nil || p.root.kind != KindMapping {
		kind := "null"
		if p.root != nil {
			kind = p.root.kind.String()
		}
		return nil, fmt.Errorf("%w: only a mapping root can be re-serialized, got %s", ErrUnsupported, kind)
	}

	document, ok := p.root.ordered().(yaml.MapSlice)
	if !ok {
		return nil, fmt.Errorf("%w: only a mapping root can be re-serialized", ErrUnsupported)
	}
	return document, nil
}
