package bbcode

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrRejected is a generic rejection, which a [Validator] can return when the captured values
// can't be used.
var ErrRejected = errors.New("captured value rejected")

// Capture holds the values captured for a tag and handed to its [Validator].
type Capture struct {
	// Content is the text between the opening and the closing tags of the unparsed-content kinds.
	Content string

	// Param is the text after '=' for the equals kinds.
	Param string
}

// Validator checks the captured values of a tag before they are substituted into the templates.
//
// Validate returns the, possibly rewritten, values to use, or a non-nil error when the tag must
// be left as plain text.
type Validator interface {
	Validate(c Capture) (Capture, error)
}

// ValidatorFunc is an adapter which allows to use an ordinary function as a [Validator].
type ValidatorFunc func(c Capture) (Capture, error)

func (f ValidatorFunc) Validate(c Capture) (Capture, error) {
	return f(c)
}

// Attribute is a single entry of the named-attribute schema of a [Tag].
type Attribute struct {
	// Name is the attribute's name, written before '=' in the tag header. Matched case-insensitively.
	Name string

	// Pattern is an optional regular expression the value must match entirely.
	// Empty Pattern accepts anything up to the next attribute or the end of the header.
	Pattern string

	// Optional attributes may be omitted. Their value is an empty string then.
	Optional bool
}

var attrNameRe = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

// Tag contains all the info about a particular tag, relevant for the parsing and the rendering.
type Tag struct {
	// Name is the lowercase name of the Tag. Does not need to be unique: Tags with the same name,
	// but different Kinds or schemas, are tried in the order they were registered.
	Name string

	// Kind defines how the content and the parameter are captured.
	Kind Kind

	// Before is the HTML inserted in place of the opening tag of the frame-opening kinds.
	Before string

	// After is the HTML inserted in place of the closing tag of the frame-opening kinds.
	After string

	// Content is the HTML replacing the entire tag of the self-contained kinds.
	Content string

	// Validator is an optional check of the captured values.
	Validator Validator

	// Trim defines on which sides the adjacent whitespace gets removed.
	Trim Trim

	// Attributes is an optional named-attribute schema. When set, the tag name must be followed by
	// a space and the attributes, in any order.
	Attributes []Attribute
}

// HasSchema is true when the Tag expects named attributes.
func (t *Tag) HasSchema() bool {
	return len(t.Attributes) > 0
}

// Validate checks the Tag's consistency and returns [ConfigError] if something is wrong.
func (t *Tag) Validate() error {
	// 1. Name
	n := len(t.Name)
	if n == 0 || n > MaxTagNameLen {
		return newTagError(IssueInvalidTagName, t.Name,
			"name must be 1 to %d bytes long, got %d", MaxTagNameLen, n)
	}

	for i := 0; i < n; i++ {
		c := t.Name[i]
		if !isASCIIPrintable(c) || isReserved(c) || (c >= 'A' && c <= 'Z') {
			return newTagError(IssueInvalidTagName, t.Name,
				"name must consist of lowercase printable ASCII symbols, got %q at index %d", c, i)
		}
	}

	// 2. Kind and templates
	if t.Kind >= numKinds {
		return newTagError(IssueInvalidKind, t.Name, "unknown kind %d", uint8(t.Kind))
	}

	if t.Trim >= numTrims {
		return newTagError(IssueInvalidTrim, t.Name, "unknown trim policy %d", uint8(t.Trim))
	}

	if t.Kind.opensFrame() {
		if t.Before == "" && t.After == "" {
			return newTagError(IssueMissingTemplate, t.Name, "kind %s requires Before or After template", t.Kind)
		}
	} else if t.Content == "" {
		return newTagError(IssueMissingTemplate, t.Name, "kind %s requires Content template", t.Kind)
	}

	// 3. Attributes
	if !t.HasSchema() {
		return nil
	}

	if t.Kind.hasParam() {
		return newTagError(IssueInvalidKind, t.Name, "kind %s can't have named attributes", t.Kind)
	}

	if len(t.Attributes) > MaxSchemaAttributes {
		return newTagError(IssueTooManyAttributes, t.Name,
			"at most %d attributes allowed, got %d", MaxSchemaAttributes, len(t.Attributes))
	}

	seen := make(map[string]struct{}, len(t.Attributes))
	for _, a := range t.Attributes {
		if !attrNameRe.MatchString(a.Name) {
			return newTagError(IssueInvalidAttrPattern, t.Name, "invalid attribute name %q", a.Name)
		}

		if _, dup := seen[a.Name]; dup {
			return newTagError(IssueDuplicateAttr, t.Name, "attribute %q defined twice", a.Name)
		}
		seen[a.Name] = struct{}{}

		if a.Pattern != "" {
			if _, err := regexp.Compile(a.Pattern); err != nil {
				return NewConfigError(IssueInvalidAttrPattern,
					fmt.Errorf("tag %q: attribute %q: %w", t.Name, a.Name, err))
			}
		}
	}

	return nil
}

// TagDecorator is a decorator function which allows to fill optional fields of the [Tag].
type TagDecorator func(t *Tag)

func WithBefore(html string) TagDecorator {
	return func(t *Tag) {
		t.Before = html
	}
}

func WithAfter(html string) TagDecorator {
	return func(t *Tag) {
		t.After = html
	}
}

// WithTemplates sets both Before and After templates.
func WithTemplates(before, after string) TagDecorator {
	return func(t *Tag) {
		t.Before = before
		t.After = after
	}
}

func WithContent(html string) TagDecorator {
	return func(t *Tag) {
		t.Content = html
	}
}

func WithValidator(v Validator) TagDecorator {
	return func(t *Tag) {
		t.Validator = v
	}
}

func WithTrim(trim Trim) TagDecorator {
	return func(t *Tag) {
		t.Trim = trim
	}
}

func WithAttributes(attrs ...Attribute) TagDecorator {
	return func(t *Tag) {
		t.Attributes = append(t.Attributes, attrs...)
	}
}

// NewTag creates new [Tag] from the name, the kind and optional values, and validates it.
func NewTag(name string, kind Kind, opts ...TagDecorator) (Tag, error) {
	t := Tag{
		Name: name,
		Kind: kind,
	}

	for _, dec := range opts {
		dec(&t)
	}

	if err := t.Validate(); err != nil {
		return Tag{}, err
	}

	return t, nil
}
