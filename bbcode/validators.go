package bbcode

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	urlCleaner = strings.NewReplacer("<br>", "", BreakTag, "")
	schemeRe   = regexp.MustCompile(`^(?i:https?|ftps?)://`)
)

// CleanURL removes the line breaks from the URL and prefixes it with "http://", unless it
// already starts with one of the schemes "http://", "https://", "ftp://" or "ftps://".
func CleanURL(url string) string {
	url = strings.TrimSpace(urlCleaner.Replace(url))
	if !schemeRe.MatchString(url) {
		url = "http://" + url
	}
	return url
}

// ValidateURL cleans the captured content and the parameter with [CleanURL]. Empty values are
// left as is, since only one of them is captured, depending on the tag's Kind.
var ValidateURL = ValidatorFunc(func(c Capture) (Capture, error) {
	if c.Content != "" {
		c.Content = CleanURL(c.Content)
	}

	if c.Param != "" {
		c.Param = CleanURL(c.Param)
	}

	return c, nil
})

var youtubeIDRes = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([^&?/]+)`),
	regexp.MustCompile(`youtube\.com/embed/([^&?/]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&?/]+)`),
	regexp.MustCompile(`youtu\.be/([^&?/]+)`),
}

// ExtractYoutubeID returns the video ID of the YouTube URL. The string, which doesn't look like
// a known YouTube URL, is returned as is.
func ExtractYoutubeID(url string) string {
	for _, re := range youtubeIDRes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return url
}

// ValidateYoutube replaces the captured content with the video ID.
var ValidateYoutube = ValidatorFunc(func(c Capture) (Capture, error) {
	c.Content = ExtractYoutubeID(c.Content)
	return c, nil
})

// ValidateSize appends "px" to the numeric parameter.
var ValidateSize = ValidatorFunc(func(c Capture) (Capture, error) {
	p := strings.TrimSpace(c.Param)
	if _, err := strconv.ParseFloat(p, 64); err == nil {
		c.Param = p + "px"
	}
	return c, nil
})

var colorRe = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3}|#[0-9a-fA-F]{6}|[a-zA-Z]{1,20})$`)

// ValidateColor accepts a hex color or a color name as the parameter and rejects anything else.
var ValidateColor = ValidatorFunc(func(c Capture) (Capture, error) {
	p := strings.TrimSpace(c.Param)
	if !colorRe.MatchString(p) {
		return c, fmt.Errorf("%w: invalid color %q", ErrRejected, c.Param)
	}
	c.Param = p
	return c, nil
})
