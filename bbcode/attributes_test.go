package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPermutations(t *testing.T) {
	require.Equal(t, [][]int{{}}, permutations(0))
	require.Equal(t, [][]int{{0, 1}, {1, 0}}, permutations(2))

	all := permutations(MaxSchemaAttributes)
	require.Len(t, all, 24)
	require.Equal(t, []int{0, 1, 2, 3}, all[0])

	seen := make(map[[4]int]struct{}, len(all))
	for _, p := range all {
		seen[[4]int{p[0], p[1], p[2], p[3]}] = struct{}{}
	}
	require.Len(t, seen, 24)
}

func TestSchemaMatcher(t *testing.T) {
	m, err := compileSchema([]Attribute{
		{Name: "width", Pattern: `\d+`},
		{Name: "height", Pattern: `\d+`},
		{Name: "alt", Optional: true},
	})
	require.NoError(t, err)
	require.Len(t, m.perms, 6)

	tests := []struct {
		name   string
		header string
		want   map[string]string
		ok     bool
	}{
		{
			name:   "schema_order",
			header: " width=10 height=20",
			want:   map[string]string{"width": "10", "height": "20", "alt": ""},
			ok:     true,
		},
		{
			name:   "any_order",
			header: " alt=a cat height=20 width=10",
			want:   map[string]string{"width": "10", "height": "20", "alt": "a cat"},
			ok:     true,
		},
		{
			name:   "case_insensitive_names",
			header: " WIDTH=1 Height=2",
			want:   map[string]string{"width": "1", "height": "2", "alt": ""},
			ok:     true,
		},
		{
			name:   "trailing_space",
			header: " width=1 height=2  ",
			want:   map[string]string{"width": "1", "height": "2", "alt": ""},
			ok:     true,
		},
		{
			name:   "escaped_bracket",
			header: ` width=1 height=2 alt=[x\]`,
			want:   map[string]string{"width": "1", "height": "2", "alt": "[x]"},
			ok:     true,
		},
		{
			name:   "placeholders_are_escaped",
			header: " width=1 height=2 alt={width}$1",
			want:   map[string]string{"width": "1", "height": "2", "alt": "&#123;width&#125;&#36;1"},
			ok:     true,
		},
		{
			name:   "missing_required",
			header: " width=10",
		},
		{
			name:   "pattern_mismatch",
			header: " width=ten height=20",
		},
		{
			name:   "unknown_attribute",
			header: " width=1 height=2 depth=3",
		},
		{
			name:   "no_space_before_attribute",
			header: "width=1 height=2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.match(tt.header)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSubstitute(t *testing.T) {
	require.Equal(t, "<b>", substitute("<b>", "x", "y", nil))
	require.Equal(t, `<a href="y">x</a>`, substitute(`<a href="$2">$1</a>`, "x", "y", nil))

	// substituted values are never rescanned
	require.Equal(t, "$2|", substitute("$1|$2", "$2", "", nil))

	attrs := map[string]string{"w": "10", "h": "{w}"}
	require.Equal(t, "10x{w} {z}", substitute("{w}x{h} {z}", "", "", attrs))
}
