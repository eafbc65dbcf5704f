package bbcode

import (
	"regexp"
	"strconv"
	"strings"
)

// defaultAttrPattern accepts any non-empty value, as short as possible, so the next
// attribute can start after it.
const defaultAttrPattern = `.+?`

// schemaMatcher matches a tag header against a named-attribute schema in any attribute order.
//
// For every order of the attributes one anchored pattern is compiled in advance, so the count of
// patterns is n! for n attributes. [MaxSchemaAttributes] keeps it small.
type schemaMatcher struct {
	// names are the attribute names in the schema order.
	names []string

	// perms are the compiled patterns, one per attribute order. The value of the attribute with
	// schema index i is captured by the group named "a<i>".
	perms []*regexp.Regexp

	// groups maps the schema index to the capture group index, per pattern.
	groups [][]int
}

// compileSchema builds the matcher for the attributes, which are expected to be validated
// by [Tag.Validate].
func compileSchema(attrs []Attribute) (*schemaMatcher, error) {
	m := &schemaMatcher{
		names: make([]string, len(attrs)),
	}

	fragments := make([]string, len(attrs))
	for i, a := range attrs {
		m.names[i] = a.Name

		pattern := a.Pattern
		if pattern == "" {
			pattern = defaultAttrPattern
		}

		frag := `\s+(?i:` + regexp.QuoteMeta(a.Name) + `)=(?P<a` + strconv.Itoa(i) + `>(?:` + pattern + `))`
		if a.Optional {
			frag = `(?:` + frag + `)?`
		}

		fragments[i] = frag
	}

	for _, order := range permutations(len(attrs)) {
		var sb strings.Builder
		sb.WriteString(`^`)
		for _, idx := range order {
			sb.WriteString(fragments[idx])
		}
		sb.WriteString(`\s*$`)

		re, err := regexp.Compile(sb.String())
		if err != nil {
			return nil, NewConfigError(IssueInvalidAttrPattern, err)
		}

		groups := make([]int, len(attrs))
		for i := range attrs {
			groups[i] = re.SubexpIndex("a" + strconv.Itoa(i))
		}

		m.perms = append(m.perms, re)
		m.groups = append(m.groups, groups)
	}

	return m, nil
}

// match tries every attribute order against the header, which is the text between the tag name
// and the closing ']'. The first order matching the entire header wins.
//
// The values are escaped, so they can't introduce template placeholders. Omitted optional
// attributes are bound to an empty string.
func (m *schemaMatcher) match(header string) (map[string]string, bool) {
	for p, re := range m.perms {
		sub := re.FindStringSubmatchIndex(header)
		if sub == nil {
			continue
		}

		bindings := make(map[string]string, len(m.names))
		for i, name := range m.names {
			g := m.groups[p][i]
			start, end := sub[2*g], sub[2*g+1]

			if start < 0 {
				bindings[name] = ""
				continue
			}

			bindings[name] = escapeBinding(header[start:end])
		}

		return bindings, true
	}

	return nil, false
}

var bindingEscaper = strings.NewReplacer(
	`\]`, `]`,
	`$`, `&#36;`,
	`{`, `&#123;`,
	`}`, `&#125;`,
)

// escapeBinding makes the value inert for the template substitution.
func escapeBinding(v string) string {
	return bindingEscaper.Replace(v)
}

// permutations returns all orders of the indexes 0..n-1, starting with the natural one.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}

	var out [][]int
	var walk func(prefix []int, used []bool)

	walk = func(prefix []int, used []bool) {
		if len(prefix) == n {
			out = append(out, append([]int(nil), prefix...))
			return
		}

		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}

			used[i] = true
			walk(append(prefix, i), used)
			used[i] = false
		}
	}

	walk(make([]int, 0, n), make([]bool, n))
	return out
}
