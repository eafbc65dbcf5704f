package bbcode

import (
	"fmt"
	"regexp"
)

// definition is a registered [Tag] along with its precompiled attribute matcher.
type definition struct {
	Tag
	schema *schemaMatcher
}

// entry is the dispatch slot of a single byte.
type entry struct {
	// defs are the definitions whose name starts with the slot's byte, in registration order.
	defs []definition

	// style is the bullet style of the itemcode with the slot's byte.
	style string

	// itemcode is true when the slot's byte is an itemcode.
	itemcode bool
}

// Dictionary is the immutable catalog of tags and itemcodes, indexed by the first byte of the tag.
//
// The Dictionary is built once by [NewDictionary] and is safe for concurrent use by any number of
// [Parser] instances.
type Dictionary struct {
	entries [256]entry
	size    int

	// autolink is true when both link tag forms, produced by [Autolink], are registered.
	autolink bool
}

var itemStyleRe = regexp.MustCompile(`^[a-z0-9-]*$`)

// DefaultItemcodes returns the itemcodes, which can be used instead of the list item tags.
func DefaultItemcodes() map[byte]string {
	return map[byte]string{
		'*': "disc",
		'@': "disc",
		'+': "square",
		'x': "square",
		'#': "square",
		'o': "circle",
		'O': "circle",
		'0': "circle",
	}
}

// NewDictionary validates the tags and the itemcodes and builds the Dictionary.
//
// The order of the tags is their priority: when several tags share the first letter, the first
// one, whose header rule is satisfied, wins. This lets the more specific definitions shadow the
// more generic ones.
func NewDictionary(tags []Tag, itemcodes map[byte]string) (*Dictionary, error) {
	d := &Dictionary{}
	linkContent, linkEquals := false, false

	for i := range tags {
		t := tags[i]

		if err := t.Validate(); err != nil {
			return nil, err
		}

		def := definition{Tag: t}
		if t.HasSchema() {
			m, err := compileSchema(t.Attributes)
			if err != nil {
				return nil, err
			}
			def.schema = m
		}

		e := &d.entries[t.Name[0]]
		e.defs = append(e.defs, def)
		d.size++

		if t.Name == LinkTag && !t.HasSchema() {
			linkContent = linkContent || t.Kind == KindUnparsedContent
			linkEquals = linkEquals || t.Kind == KindUnparsedEquals
		}
	}

	d.autolink = linkContent && linkEquals

	for c, style := range itemcodes {
		if !isASCIIPrintable(c) || isReserved(c) {
			return nil, NewConfigError(IssueInvalidItemcode,
				fmt.Errorf("itemcode expected to be a printable ASCII symbol except the tag syntax, got %q", c))
		}

		if !itemStyleRe.MatchString(style) {
			return nil, NewConfigError(IssueInvalidItemcode,
				fmt.Errorf("itemcode %q has invalid style %q", c, style))
		}

		e := &d.entries[c]
		e.itemcode = true
		e.style = style
	}

	return d, nil
}

// Candidates returns the tags whose name starts with the byte c, ignoring its case, in the
// priority order.
func (d *Dictionary) Candidates(c byte) []Tag {
	defs := d.entries[lower(c)].defs
	out := make([]Tag, len(defs))
	for i := range defs {
		out[i] = defs[i].Tag
	}
	return out
}

// Itemcode returns the bullet style of the itemcode c.
func (d *Dictionary) Itemcode(c byte) (style string, ok bool) {
	e := &d.entries[c]
	return e.style, e.itemcode
}

// Autolinks reports whether the bare URLs are rewritten into links. It requires both the
// [KindUnparsedContent] and the [KindUnparsedEquals] tags named [LinkTag].
func (d *Dictionary) Autolinks() bool {
	return d.autolink
}

// Len returns the number of registered tags.
func (d *Dictionary) Len() int {
	return d.size
}

// definitions returns the dispatch slot for the tag candidate starting with c.
func (d *Dictionary) definitions(c byte) []definition {
	return d.entries[lower(c)].defs
}
