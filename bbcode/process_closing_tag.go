package bbcode

import "strings"

// processClosingTag handles "[/name]" at the cursor. Returns false if the closing tag must be
// treated as plain text.
//
// The frames above the matching one are closed too, innermost first, each followed by its own
// outside trimming. A closing tag without an opened counterpart closes nothing: the stack is left
// untouched, so malformed input can't close the tags it didn't open.
func (s *scanner) processClosingTag() bool {
	rest := s.src[s.pos:]

	end := strings.IndexByte(rest, ']')
	if end < 0 {
		s.warns.add(IssueUnterminatedTag, s.at(), "closing tag is missing ']'")
		return false
	}

	if end == 2 {
		s.warns.add(IssueEmptyClosingTag, s.at(), "closing tag \"[/]\" has no name")
		return false
	}

	name := strings.ToLower(rest[2:end])

	idx := s.stack.find(name)
	if idx < 0 {
		s.warns.add(IssueUnmatchedClosingTag, s.at(), "closing tag %q has no opened counterpart", rest[:end+1])
		return false
	}

	s.pos += end + 1

	for s.stack.len() > idx {
		f := s.stack.pop()
		s.out.WriteString(f.after)

		if f.trim.Outside() {
			s.skipWhitespace()
		}
	}

	return true
}
