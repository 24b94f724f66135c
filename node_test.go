package objectpath

import (
	"encoding/json"
	"reflect"
	"slices"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestNewNodeKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want Kind
	}{
		{
			name: "nil",
			in:   nil,
			want: KindNull,
		},
		{
			name: "string",
			in:   "value",
			want: KindScalar,
		},
		{
			name: "bool",
			in:   true,
			want: KindScalar,
		},
		{
			name: "int",
			in:   42,
			want: KindScalar,
		},
		{
			name: "json number",
			in:   json.Number("7"),
			want: KindScalar,
		},
		{
			name: "slice",
			in:   []any{1, 2},
			want: KindSequence,
		},
		{
			name: "map",
			in:   map[string]any{"a": 1},
			want: KindMapping,
		},
		{
			name: "map slice",
			in:   yaml.MapSlice{{Key: "a", Value: 1}},
			want: KindMapping,
		},
		{
			name: "opaque struct",
			in:   struct{ X int }{X: 1},
			want: KindScalar,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NewNode(tt.in).Kind(); got != tt.want {
				t.Fatalf("NewNode(%v).Kind() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewNodeSortsPlainMapKeys(t *testing.T) {
	t.Parallel()

	node := NewNode(map[string]any{"zulu": 1, "alpha": 2, "mike": 3})

	want := []string{"alpha", "mike", "zulu"}
	if got := node.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %q, want %q", got, want)
	}
}

func TestNewNodeKeepsMapSliceOrder(t *testing.T) {
	t.Parallel()

	node := NewNode(yaml.MapSlice{
		{Key: "zulu", Value: 1},
		{Key: "alpha", Value: 2},
	})

	want := []string{"zulu", "alpha"}
	if got := node.Keys(); !slices.Equal(got, want) {
		t.Fatalf("Keys() = %q, want %q", got, want)
	}
}

func TestMappingDuplicateKeyLastWinsKeepsPosition(t *testing.T) {
	t.Parallel()

	node := Mapping(
		Entry{Key: "a", Value: Scalar(1)},
		Entry{Key: "b", Value: Scalar(2)},
		Entry{Key: "a", Value: Scalar(3)},
	)

	if got, want := node.Keys(), []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("Keys() = %q, want %q", got, want)
	}

	value, ok := node.Get("a")
	if !ok {
		t.Fatal("Get(a) missing")
	}
	if got := value.Value(); got != 3 {
		t.Fatalf("Get(a).Value() = %v, want 3", got)
	}
}

func TestNodeInterfaceRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"name":  "doc",
		"tags":  []any{"a", "b"},
		"count": 2,
		"extra": nil,
	}

	got := NewNode(in).Interface()
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("Interface() = %#v, want %#v", got, in)
	}
}

func TestNodeAccessorsOnWrongKind(t *testing.T) {
	t.Parallel()

	scalar := Scalar("x")

	if _, ok := scalar.Get("a"); ok {
		t.Fatal("Get on scalar reported ok")
	}
	if got := scalar.Keys(); got != nil {
		t.Fatalf("Keys on scalar = %v, want nil", got)
	}
	if got := scalar.Len(); got != 0 {
		t.Fatalf("Len on scalar = %d, want 0", got)
	}
	if got := Sequence(Scalar(1)).Value(); got != nil {
		t.Fatalf("Value on sequence = %v, want nil", got)
	}
}
