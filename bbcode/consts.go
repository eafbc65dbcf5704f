// Package bbcode converts bracket-tag markup into HTML fragments.
//
// The engine is a single forward pass over the input. Every '[' is a tag candidate, resolved
// against an immutable [Dictionary] of [Tag] definitions. Unknown, malformed or rejected tags are
// left in the output as plain text, so [Parser.Parse] never fails. Problems are reported as
// [Warning] values next to the produced HTML.
//
// # Tag kinds
//
//	Simple                 [tag]parsed[/tag]
//	UnparsedContent        [tag]verbatim[/tag]
//	UnparsedEquals         [tag=verbatim]parsed[/tag]
//	UnparsedEqualsContent  [tag=verbatim]verbatim[/tag]
//	ParsedEquals           [tag=parsed]parsed[/tag]
//	Closed                 [tag], [tag/] or [tag /]
//
// # Templates
//
// Before, After and Content templates may reference the captured values: $1 is the content (or the
// parameter for the equals kinds), $2 is the parameter of an UnparsedEqualsContent tag, and {name}
// is the value bound to the named attribute.
package bbcode

import "fmt"

// Kind defines how the content and the parameter of a [Tag] are captured.
type Kind uint8

const (
	// KindSimple opens a frame on the stack. Its content is parsed as usual.
	KindSimple Kind = iota

	// KindUnparsedContent captures everything up to the closing tag verbatim.
	KindUnparsedContent

	// KindUnparsedEquals takes a verbatim parameter after '=' and opens a frame.
	KindUnparsedEquals

	// KindUnparsedEqualsContent takes a verbatim parameter and a verbatim content.
	KindUnparsedEqualsContent

	// KindParsedEquals is like [KindUnparsedEquals], but the parameter itself is converted
	// recursively before the substitution.
	KindParsedEquals

	// KindClosed has neither content nor closing tag.
	KindClosed

	numKinds
)

var kindNames = [numKinds]string{
	KindSimple:                "simple",
	KindUnparsedContent:       "unparsed_content",
	KindUnparsedEquals:        "unparsed_equals",
	KindUnparsedEqualsContent: "unparsed_equals_content",
	KindParsedEquals:          "parsed_equals",
	KindClosed:                "closed",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind returns the Kind with the provided name. Empty name means [KindSimple].
func ParseKind(name string) (Kind, error) {
	if name == "" {
		return KindSimple, nil
	}

	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, NewConfigError(IssueInvalidKind, fmt.Errorf("unknown tag kind %q", name))
}

// opensFrame is true for the kinds whose closing is not self-contained.
func (k Kind) opensFrame() bool {
	return k == KindSimple || k == KindUnparsedEquals || k == KindParsedEquals
}

// hasParam is true for the kinds which require '=' right after the tag name.
func (k Kind) hasParam() bool {
	return k == KindUnparsedEquals || k == KindUnparsedEqualsContent || k == KindParsedEquals
}

// Trim defines on which side of a tag the adjacent whitespace gets removed.
type Trim uint8

const (
	TrimNone Trim = iota

	// TrimInside removes whitespace right after the opening tag.
	TrimInside

	// TrimOutside removes whitespace right after the closing tag.
	TrimOutside

	TrimBoth

	numTrims

	// A self-contained tag removes the whitespace after it with any policy but TrimNone.
)

var trimNames = [numTrims]string{
	TrimNone:    "none",
	TrimInside:  "inside",
	TrimOutside: "outside",
	TrimBoth:    "both",
}

func (t Trim) String() string {
	if t < numTrims {
		return trimNames[t]
	}
	return fmt.Sprintf("Trim(%d)", uint8(t))
}

// Inside reports whether the whitespace after the opening tag must be removed.
func (t Trim) Inside() bool { return t == TrimInside || t == TrimBoth }

// Outside reports whether the whitespace after the closing tag must be removed.
func (t Trim) Outside() bool { return t == TrimOutside || t == TrimBoth }

// ParseTrim returns the Trim policy with the provided name. Empty name means [TrimNone].
func ParseTrim(name string) (Trim, error) {
	if name == "" {
		return TrimNone, nil
	}

	for t, n := range trimNames {
		if n == name {
			return Trim(t), nil
		}
	}

	return 0, NewConfigError(IssueInvalidTrim, fmt.Errorf("unknown trim policy %q", name))
}

const (
	// BreakTag replaces every line feed of the input.
	BreakTag = "<br />"

	// NBSP is the non-breaking space entity used by the whitespace normalization.
	NBSP = "&nbsp;"

	// MaxTagNameLen is the max number of bytes in a Tag's name.
	MaxTagNameLen = 32

	// MaxSchemaAttributes is the max number of attributes in a Tag's schema. The matcher tries
	// every order of the attributes, so the number of compiled patterns grows as a factorial.
	MaxSchemaAttributes = 4

	// DefaultMaxDepth is the default recursion limit for [KindParsedEquals] parameters.
	DefaultMaxDepth = 16

	// DefaultMaxWarnings is the default capacity of the per-call [Warnings] collector.
	DefaultMaxWarnings = 64

	// ListTag and ListItemTag are the names of the tags inside which itemcodes are expanded.
	ListTag     = "list"
	ListItemTag = "li"

	// LinkTag is the name of the tag produced by the autolink pass. Autolinking is suppressed
	// while a frame with this name is open.
	LinkTag = "url"
)
