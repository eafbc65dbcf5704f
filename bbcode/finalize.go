package bbcode

import "strings"

var whitespaceReplacer = strings.NewReplacer(
	BreakTag+" ", BreakTag+NBSP,
	"  ", " "+NBSP,
	"\r", "",
	"&#13;", "\n",
)

// finalize normalizes the whitespace of the produced HTML, so it is rendered the way it was typed.
//
// The line feeds left at this point come only from the templates and are dropped, since every line
// feed of the input is already replaced with [BreakTag]. A leading space becomes [NBSP], as well as
// every second space of a run and a space starting a line.
func finalize(s string) string {
	s = strings.ReplaceAll(s, "\n", "")

	if strings.HasPrefix(s, " ") {
		s = NBSP + s[1:]
	}

	return whitespaceReplacer.Replace(s)
}
