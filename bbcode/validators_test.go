package bbcode

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanURL(t *testing.T) {
	require.Equal(t, "http://a.com", CleanURL("a.com"))
	require.Equal(t, "http://a.com", CleanURL("http://a.com"))
	require.Equal(t, "HTTPS://a.com", CleanURL("HTTPS://a.com"))
	require.Equal(t, "http://a.com/x", CleanURL(" a.com<br />/x "))
	require.Equal(t, "ftp://b.org/f", CleanURL("ftp://b.org/f"))
	require.Equal(t, "FTPS://b.org", CleanURL("FTPS://b.org"))
	require.Equal(t, "http://javascript://x", CleanURL("javascript://x"))
	require.Equal(t, "http://a.com/?next=http://b.com", CleanURL("a.com/?next=http://b.com"))
}

func TestExtractYoutubeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ", want: "dQw4w9WgXcQ"},
		{in: "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=10", want: "dQw4w9WgXcQ"},
		{in: "http://youtube.com/embed/abc123", want: "abc123"},
		{in: "youtube.com/v/abc123?x=1", want: "abc123"},
		{in: "https://youtu.be/abc123", want: "abc123"},
		{in: "abc123", want: "abc123"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, ExtractYoutubeID(tt.in))
		})
	}
}

func TestValidateSize(t *testing.T) {
	c, err := ValidateSize.Validate(Capture{Param: "12"})
	require.NoError(t, err)
	require.Equal(t, "12px", c.Param)

	c, err = ValidateSize.Validate(Capture{Param: "1.5em"})
	require.NoError(t, err)
	require.Equal(t, "1.5em", c.Param)
}

func TestValidateColor(t *testing.T) {
	for _, ok := range []string{"red", "#f00", "#FF0000", " blue "} {
		_, err := ValidateColor.Validate(Capture{Param: ok})
		require.NoError(t, err, ok)
	}

	for _, bad := range []string{"", "#ff", "red;x", `red" onclick="x`, "#12345g"} {
		_, err := ValidateColor.Validate(Capture{Param: bad})
		require.True(t, errors.Is(err, ErrRejected), bad)
	}
}

func TestValidateURL(t *testing.T) {
	c, err := ValidateURL.Validate(Capture{Content: "a.com"})
	require.NoError(t, err)
	require.Equal(t, Capture{Content: "http://a.com"}, c)

	c, err = ValidateURL.Validate(Capture{Param: "https://b.com"})
	require.NoError(t, err)
	require.Equal(t, Capture{Param: "https://b.com"}, c)
}
