package bbcode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAutolink(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no_links",
			in:   "no links here",
			want: "no links here",
		},
		{
			name: "scheme",
			in:   "http://a.com",
			want: "[url]http://a.com[/url]",
		},
		{
			name: "secure_and_ftp",
			in:   "https://a.com ftp://b.org/f",
			want: "[url]https://a.com[/url] [url]ftp://b.org/f[/url]",
		},
		{
			name: "www_host",
			in:   "go to www.a.com.",
			want: "go to [url=http://www.a.com]www.a.com[/url].",
		},
		{
			name: "scheme_with_www_is_not_wrapped_twice",
			in:   "http://www.a.com",
			want: "[url]http://www.a.com[/url]",
		},
		{
			name: "parentheses",
			in:   "(http://a.com)",
			want: "([url]http://a.com[/url])",
		},
		{
			name: "balanced_parentheses_kept",
			in:   "see http://a.com:8080/x_(y) now",
			want: "see [url]http://a.com:8080/x_(y)[/url] now",
		},
		{
			name: "unbalanced_parenthesis_dropped",
			in:   "(see http://a.com/x).",
			want: "(see [url]http://a.com/x[/url]).",
		},
		{
			name: "www_in_parentheses",
			in:   "(www.a.com/w_(b))",
			want: "([url=http://www.a.com/w_(b)]www.a.com/w_(b)[/url])",
		},
		{
			name: "scheme_without_host",
			in:   "http://) and more",
			want: "http://) and more",
		},
		{
			name: "glued_to_word",
			in:   "xhttp://a.com",
			want: "xhttp://a.com",
		},
		{
			name: "email_like",
			in:   "me@www.a.com",
			want: "me@www.a.com",
		},
		{
			name: "encoded_quote_ends_url",
			in:   "&quot;http://a.com&quot;",
			want: "&quot;[url]http://a.com[/url]&quot;",
		},
		{
			name: "encoded_ampersand_stays",
			in:   "http://a.com/?x=1&amp;y=2",
			want: "[url]http://a.com/?x=1&amp;y=2[/url]",
		},
		{
			name: "existing_link_tag",
			in:   "[url]http://a.com[/url] and http://b.com",
			want: "[url]http://a.com[/url] and http://b.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Autolink(tt.in)
			require.Equal(t, tt.want, got)
			require.Equal(t, got, Autolink(got), "Autolink must be idempotent")
		})
	}
}
