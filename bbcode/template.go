package bbcode

import "strings"

// substitute fills the template in a single pass: $1 gets v1, $2 gets v2 and {name} gets the
// value bound to the attribute name. Substituted values are never scanned for placeholders again.
func substitute(tmpl, v1, v2 string, attrs map[string]string) string {
	if !strings.ContainsAny(tmpl, "${") {
		return tmpl
	}

	pairs := make([]string, 0, 4+2*len(attrs))
	pairs = append(pairs, "$1", v1, "$2", v2)
	for name, v := range attrs {
		pairs = append(pairs, "{"+name+"}", v)
	}

	return strings.NewReplacer(pairs...).Replace(tmpl)
}
