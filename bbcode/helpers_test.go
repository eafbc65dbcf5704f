package bbcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustTag(t testing.TB, name string, kind Kind, opts ...TagDecorator) Tag {
	t.Helper()

	tag, err := NewTag(name, kind, opts...)
	require.NoError(t, err)
	return tag
}

// testTags mirrors a typical forum catalog. The order matters: it is the dispatch priority.
func testTags(t testing.TB) []Tag {
	t.Helper()

	return []Tag{
		mustTag(t, "b", KindSimple, WithTemplates("<strong>", "</strong>")),
		mustTag(t, "i", KindSimple, WithTemplates("<em>", "</em>")),
		mustTag(t, "img", KindUnparsedContent,
			WithContent(`<img src="$1" alt="" />`),
			WithValidator(ValidateURL)),
		mustTag(t, "li", KindSimple, WithTemplates("<li>", "</li>"), WithTrim(TrimBoth)),
		mustTag(t, "list", KindSimple, WithTemplates(`<ul class="normal">`, "</ul>"), WithTrim(TrimInside)),
		mustTag(t, "list", KindSimple,
			WithTemplates(`<ul class="{type}" data-start="{start}">`, "</ul>"),
			WithTrim(TrimInside),
			WithAttributes(
				Attribute{Name: "type", Pattern: `disc|square|circle`},
				Attribute{Name: "start", Pattern: `\d+`, Optional: true},
			)),
		mustTag(t, "quote", KindSimple, WithTemplates("<blockquote>", "</blockquote>")),
		mustTag(t, "quote", KindUnparsedEquals,
			WithTemplates(`<blockquote><div class="quote-from">$1</div>`, "</blockquote>")),
		mustTag(t, "quote", KindSimple,
			WithTemplates(`<blockquote data-date="{date}"><cite>{author}</cite>`, "</blockquote>"),
			WithAttributes(
				Attribute{Name: "author"},
				Attribute{Name: "date", Pattern: `\d{4}`, Optional: true},
			)),
		mustTag(t, "s", KindSimple, WithTemplates("<del>", "</del>")),
		mustTag(t, "size", KindUnparsedEquals,
			WithTemplates(`<span style="font-size: $1;">`, "</span>"),
			WithValidator(ValidateSize)),
		mustTag(t, "spoiler", KindParsedEquals,
			WithTemplates("<details><summary>$1</summary>", "</details>")),
		mustTag(t, "u", KindSimple, WithTemplates("<u>", "</u>")),
		mustTag(t, "url", KindUnparsedContent,
			WithContent(`<a href="$1" target="_blank">$1</a>`),
			WithValidator(ValidateURL)),
		mustTag(t, "url", KindUnparsedEquals,
			WithTemplates(`<a href="$1" target="_blank">`, "</a>"),
			WithValidator(ValidateURL)),
		mustTag(t, "code", KindUnparsedContent, WithContent("<pre>$1</pre>"), WithTrim(TrimOutside)),
		mustTag(t, "color", KindUnparsedEquals,
			WithTemplates(`<span style="color: $1;">`, "</span>"),
			WithValidator(ValidateColor)),
		mustTag(t, "email", KindUnparsedEqualsContent, WithContent(`<a href="mailto:$2">$1</a>`)),
		mustTag(t, "hr", KindClosed, WithContent("<hr />")),
	}
}

func testDict(t testing.TB) *Dictionary {
	t.Helper()

	d, err := NewDictionary(testTags(t), DefaultItemcodes())
	require.NoError(t, err)
	return d
}

func testParser(t testing.TB) *Parser {
	t.Helper()

	p, err := NewParser(testDict(t), Limits{})
	require.NoError(t, err)
	return p
}

func requireConfigIssue(t *testing.T, err error, want Issue) {
	t.Helper()
	require.Error(t, err)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce), "expected ConfigError, got %T: %v", err, err)
	require.Equal(t, want, ce.Issue)
}

func issues(ws []Warning) []Issue {
	out := make([]Issue, len(ws))
	for i, w := range ws {
		out[i] = w.Issue
	}
	return out
}
