package bbcode

import (
	"regexp"
	"strings"
)

// The entity-encoded quotes, angle brackets and non-breaking spaces are swapped for sentinels
// containing NUL, which no URL pattern accepts, so a URL can't swallow them. The encoded
// ampersand is swapped for SUB, which the URL patterns accept, so query strings survive.
var (
	entityProtector = strings.NewReplacer(
		"&quot;", "\x00q\x00",
		"&#039;", "\x00a\x00",
		"&#39;", "\x00b\x00",
		"&lt;", "\x00l\x00",
		"&gt;", "\x00g\x00",
		NBSP, "\x00n\x00",
		"&amp;", "\x1a",
	)

	entityRestorer = strings.NewReplacer(
		"\x00q\x00", "&quot;",
		"\x00a\x00", "&#039;",
		"\x00b\x00", "&#39;",
		"\x00l\x00", "&lt;",
		"\x00g\x00", "&gt;",
		"\x00n\x00", NBSP,
		"\x1a", "&amp;",
	)
)

const (
	// urlBoundary is the symbol before the URL; a URL glued to a word or to another URL is ignored.
	urlBoundary = `(^|[^\w@/.=:\x1a-])`

	// urlBody is a run of URL symbols ending with a symbol unlikely to be a sentence punctuation.
	// The closing parenthesis is kept only if the URL opens it, see trimURL.
	urlBody = `[\w\-.~:/?#@!$&'()*+,;=%\x1a]*[\w/#=\-~%+)\x1a]`

	// urlTail is the punctuation which ends a sentence rather than a URL.
	urlTail = ".:?@!$&'(*,;"
)

var (
	schemeURLRe = regexp.MustCompile(urlBoundary + `((?i:https?|ftps?)://` + urlBody + `)`)
	wwwURLRe    = regexp.MustCompile(urlBoundary + `((?i:www)\.[\w\-]+` + urlBody + `)`)
)

// Autolink rewrites the bare URLs of the literal text into link tags: the URLs with an explicit
// scheme become "[url]URL[/url]", and the "www." hosts become "[url=http://HOST]HOST[/url]".
//
// The text which already contains a link tag is returned unchanged, so Autolink is idempotent.
func Autolink(text string) string {
	if !strings.Contains(text, "://") && indexFold(text, "www.") < 0 {
		return text
	}

	if indexFold(text, "["+LinkTag) >= 0 {
		return text
	}

	s := entityProtector.Replace(text)
	s = linkify(s, schemeURLRe, func(url string) string {
		return "[" + LinkTag + "]" + url + "[/" + LinkTag + "]"
	})
	s = linkify(s, wwwURLRe, func(url string) string {
		return "[" + LinkTag + "=http://" + url + "]" + url + "[/" + LinkTag + "]"
	})

	return entityRestorer.Replace(s)
}

// linkify wraps every URL matched by the re. The URL is the second group of the match.
func linkify(s string, re *regexp.Regexp, wrap func(url string) string) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + len(matches)*(2*len(LinkTag)+5))

	last := 0
	for _, m := range matches {
		start := m[4]
		url := trimURL(s[start:m[5]])
		if strings.HasSuffix(url, "://") {
			continue
		}

		b.WriteString(s[last:start])
		b.WriteString(wrap(url))
		last = start + len(url)
	}
	b.WriteString(s[last:])

	return b.String()
}

// trimURL drops the sentence punctuation and the unbalanced closing parentheses from the end
// of the URL.
func trimURL(url string) string {
	for {
		url = strings.TrimRight(url, urlTail)
		if !strings.HasSuffix(url, ")") || strings.Count(url, ")") <= strings.Count(url, "(") {
			return url
		}
		url = url[:len(url)-1]
	}
}
