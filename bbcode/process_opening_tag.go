package bbcode

import (
	"strings"
)

// processOpeningTag resolves the tag candidate at the cursor against the Dictionary.
//
// selected is true when some definition satisfied its header rule. Only the first such definition
// is used: if its capture fails (missing closer, validator rejection) the whole candidate becomes
// plain text and no other definition is tried. ok is true when the tag was converted.
func (s *scanner) processOpeningTag() (selected, ok bool) {
	rest := s.src[s.pos:]
	defs := s.dict.definitions(rest[1])

	for i := range defs {
		def := &defs[i]

		if !hasPrefixFold(rest[1:], def.Name) {
			continue
		}

		nameEnd := 1 + len(def.Name)
		bodyStart, attrs, matched := s.matchHeader(def, rest, nameEnd)
		if !matched {
			continue
		}

		return true, s.apply(def, attrs, bodyStart)
	}

	return false, false
}

// matchHeader checks the text after the tag name against the header rule of the definition.
// bodyStart is the index in rest right after the header: after ']' for the most kinds, or
// after '=' for the equals kinds.
func (s *scanner) matchHeader(def *definition, rest string, nameEnd int) (bodyStart int, attrs map[string]string, ok bool) {
	after := rest[nameEnd:]

	// 1. Schema-bearing definitions need a space and the attributes in any order
	if def.schema != nil {
		if !strings.HasPrefix(after, " ") {
			return 0, nil, false
		}

		end := indexUnescaped(after, ']')
		if end < 0 {
			return 0, nil, false
		}

		header := after[:end]
		if def.Kind == KindClosed {
			header = strings.TrimSuffix(strings.TrimRight(header, " "), "/")
		}

		attrs, ok = def.schema.match(header)
		if !ok {
			s.warns.add(IssueAttributeMismatch, s.at(),
				"attributes of tag %q do not match its schema", def.Name)
			return 0, nil, false
		}

		return nameEnd + end + 1, attrs, true
	}

	// 2. Otherwise the header rule depends on the Kind
	switch def.Kind {
	case KindSimple, KindUnparsedContent:
		if strings.HasPrefix(after, "]") {
			return nameEnd + 1, nil, true
		}

	case KindUnparsedEquals, KindUnparsedEqualsContent, KindParsedEquals:
		if strings.HasPrefix(after, "=") {
			return nameEnd + 1, nil, true
		}

	case KindClosed:
		switch {
		case strings.HasPrefix(after, "]"):
			return nameEnd + 1, nil, true
		case strings.HasPrefix(after, "/]"):
			return nameEnd + 2, nil, true
		case strings.HasPrefix(after, " /]"):
			return nameEnd + 3, nil, true
		}
	}

	return 0, nil, false
}

// apply captures the content and the parameter of the selected definition and emits its HTML.
// Returns false, with the cursor untouched, when the tag must stay plain text.
func (s *scanner) apply(def *definition, attrs map[string]string, bodyStart int) bool {
	rest := s.src[s.pos:]
	closer := "[/" + def.Name + "]"

	switch def.Kind {
	case KindSimple:
		s.open(def,
			substitute(def.Before, "", "", attrs),
			substitute(def.After, "", "", attrs),
			bodyStart)

	case KindUnparsedContent:
		rel := indexFold(rest[bodyStart:], closer)
		if rel < 0 {
			s.warns.add(IssueMissingCloser, s.at(), "tag %q has no closing tag %q", def.Name, closer)
			return false
		}

		c, ok := s.validate(def, Capture{Content: rest[bodyStart : bodyStart+rel]})
		if !ok {
			return false
		}

		s.out.WriteString(substitute(def.Content, c.Content, "", attrs))
		s.pos += bodyStart + rel + len(closer)
		s.trimAfterContent(def.Trim)

	case KindUnparsedEquals, KindParsedEquals:
		rel := strings.IndexByte(rest[bodyStart:], ']')
		if rel < 0 {
			s.warns.add(IssueUnterminatedTag, s.at(), "parameter of tag %q is missing ']'", def.Name)
			return false
		}

		c, ok := s.validate(def, Capture{Param: rest[bodyStart : bodyStart+rel]})
		if !ok {
			return false
		}

		param := c.Param
		if def.Kind == KindParsedEquals {
			param = s.nested(param, s.at()+bodyStart)
		}

		s.open(def,
			substitute(def.Before, param, "", nil),
			substitute(def.After, param, "", nil),
			bodyStart+rel+1)

	case KindUnparsedEqualsContent:
		rel := strings.IndexByte(rest[bodyStart:], ']')
		if rel < 0 {
			s.warns.add(IssueUnterminatedTag, s.at(), "parameter of tag %q is missing ']'", def.Name)
			return false
		}

		contentStart := bodyStart + rel + 1
		closeRel := indexFold(rest[contentStart:], closer)
		if closeRel < 0 {
			s.warns.add(IssueMissingCloser, s.at(), "tag %q has no closing tag %q", def.Name, closer)
			return false
		}

		c, ok := s.validate(def, Capture{
			Content: rest[contentStart : contentStart+closeRel],
			Param:   rest[bodyStart : bodyStart+rel],
		})
		if !ok {
			return false
		}

		s.out.WriteString(substitute(def.Content, c.Content, c.Param, nil))
		s.pos += contentStart + closeRel + len(closer)
		s.trimAfterContent(def.Trim)

	case KindClosed:
		s.out.WriteString(substitute(def.Content, "", "", attrs))
		s.pos += bodyStart
		s.trimAfterContent(def.Trim)
	}

	return true
}

// open pushes the frame of the definition with the resolved closing HTML, emits the opening HTML
// and moves the cursor by stride.
func (s *scanner) open(def *definition, before, after string, stride int) {
	s.stack.push(frame{
		name:  def.Name,
		after: after,
		trim:  def.Trim,
		pos:   s.at(),
	})

	s.out.WriteString(before)
	s.pos += stride

	if def.Trim.Inside() {
		s.skipWhitespace()
	}
}

// trimAfterContent applies the trimming after a self-contained tag. Such tag is opened and
// closed at once, so the whitespace after it is both inside and outside.
func (s *scanner) trimAfterContent(t Trim) {
	if t != TrimNone {
		s.skipWhitespace()
	}
}

// validate runs the definition's Validator, if any. Returns false if the capture was rejected.
func (s *scanner) validate(def *definition, c Capture) (Capture, bool) {
	if def.Validator == nil {
		return c, true
	}

	v, err := def.Validator.Validate(c)
	if err != nil {
		s.warns.add(IssueValidatorRejected, s.at(), "tag %q rejected: %v", def.Name, err)
		return c, false
	}

	return v, true
}

// nested converts the parameter of a parsed-equals tag with a fresh scanner one level deeper.
// The parameter found deeper than [Limits.MaxDepth] is returned as is. The parameter nested
// into a link is not autolinked.
func (s *scanner) nested(param string, pos int) string {
	if s.depth+1 > s.p.limits.MaxDepth {
		s.warns.add(IssueDepthExceeded, pos, "parameter nested deeper than %d levels is not parsed", s.p.limits.MaxDepth)
		return param
	}

	inner, _ := NewWarnings(WarnOverflowTrunc, s.p.limits.MaxWarnings)
	out := s.p.convert(param, s.depth+1, &inner, s.noAutolink || s.stack.inLink())

	for _, w := range inner.List() {
		w.Pos += pos
		s.warns.Add(w)
	}

	return out
}
