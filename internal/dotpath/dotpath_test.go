package dotpath

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "empty",
			raw:  "",
			want: nil,
		},
		{
			name: "single segment",
			raw:  "field",
			want: []string{"field"},
		},
		{
			name: "nested",
			raw:  "a.b.c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "numeric segments",
			raw:  "items.2.name",
			want: []string{"items", "2", "name"},
		},
		{
			name: "escaped dot",
			raw:  `a\.b.c`,
			want: []string{"a.b", "c"},
		},
		{
			name: "escaped dot only segment",
			raw:  `metric\.count`,
			want: []string{"metric.count"},
		},
		{
			name: "escape survives intervening characters",
			raw:  `a\b.c`,
			want: []string{"ab.c"},
		},
		{
			name: "backslash is dropped",
			raw:  `a\\b`,
			want: []string{"ab"},
		},
		{
			name: "consecutive dots collapse",
			raw:  "a..b",
			want: []string{"a", "b"},
		},
		{
			name: "leading dot collapses",
			raw:  ".a.b",
			want: []string{"a", "b"},
		},
		{
			name: "trailing dot collapses",
			raw:  "a.b.",
			want: []string{"a", "b"},
		},
		{
			name: "only dots",
			raw:  "...",
			want: nil,
		},
		{
			name: "unicode segment",
			raw:  "配置.値",
			want: []string{"配置", "値"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.raw); !slices.Equal(got, tt.want) {
				t.Fatalf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIsPure(t *testing.T) {
	t.Parallel()

	const raw = `a\.b.items.0`
	first := Parse(raw)
	second := Parse(raw)

	if !slices.Equal(first, second) {
		t.Fatalf("Parse(%q) not deterministic: %q vs %q", raw, first, second)
	}
}
