package bbcode

// processItemcode expands "[c]", where c is an itemcode, into a list item. It's valid only right
// inside a list or a list item: the opened list item is closed first, then a new one is opened.
// Returns false if the bracket must be treated as plain text.
func (s *scanner) processItemcode() bool {
	rest := s.src[s.pos:]

	if len(rest) < 3 || rest[2] != ']' {
		return false
	}

	style, ok := s.dict.Itemcode(rest[1])
	if !ok {
		return false
	}

	top, ok := s.stack.peek()
	if !ok || (top.name != ListItemTag && top.name != ListTag) {
		s.warns.add(IssueItemcodeOutsideList, s.at(), "itemcode %q is used outside of a list", rest[:3])
		return false
	}

	if top.name == ListItemTag {
		f := s.stack.pop()
		s.out.WriteString(f.after)
	}

	s.stack.push(frame{
		name:  ListItemTag,
		after: "</li>",
		trim:  TrimBoth,
		pos:   s.at(),
	})

	if style == "" {
		s.out.WriteString("<li>")
	} else {
		s.out.WriteString(`<li type="` + style + `">`)
	}

	s.pos += 3
	s.skipWhitespace()

	return true
}
