package bbcode

// frame is a tag which is opened and awaits its closing tag.
type frame struct {
	// name is the lowercase name of the tag.
	name string

	// after is the closing HTML with all the placeholders already substituted.
	after string

	// trim is the whitespace policy applied after the closing HTML is emitted.
	trim Trim

	// pos is the position of the opening tag, used for Warnings.
	pos int
}

// tagStack is the LIFO of the opened tags of a single parse call.
type tagStack struct {
	frames []frame

	// links counts the opened frames named [LinkTag].
	links int
}

func (s *tagStack) push(f frame) {
	s.frames = append(s.frames, f)
	if f.name == LinkTag {
		s.links++
	}
}

// pop removes the last frame and returns it. The stack must not be empty.
func (s *tagStack) pop() frame {
	lastItemIdx := len(s.frames) - 1
	f := s.frames[lastItemIdx]
	s.frames = s.frames[:lastItemIdx]
	if f.name == LinkTag {
		s.links--
	}
	return f
}

// peek returns the last frame, if any.
func (s *tagStack) peek() (frame, bool) {
	if len(s.frames) == 0 {
		return frame{}, false
	}
	return s.frames[len(s.frames)-1], true
}

func (s *tagStack) len() int {
	return len(s.frames)
}

// find returns the index of the topmost frame with the name, or -1.
func (s *tagStack) find(name string) int {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].name == name {
			return i
		}
	}
	return -1
}

// inLink is true while any link frame is opened.
func (s *tagStack) inLink() bool {
	return s.links > 0
}
