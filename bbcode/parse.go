package bbcode

import (
	"strings"
)

// Result is the output of a single [Parser.Parse] call.
type Result struct {
	// Output is the produced HTML fragment.
	Output string `json:"output"`

	// Warnings is a list of non-critical issues detected during the parsing. The offending
	// markup is kept in the Output as plain text.
	Warnings []Warning `json:"warnings"`

	// Dropped is the number of Warnings discarded after [Limits.MaxWarnings] was reached.
	Dropped int `json:"dropped"`
}

// Parser converts the markup into HTML with the tags of its [Dictionary].
//
// A Parser holds no per-call state and is safe for concurrent use.
type Parser struct {
	dict   *Dictionary
	limits Limits
}

// NewParser creates a Parser for the Dictionary. Zero values of the Limits are replaced with
// the defaults.
func NewParser(d *Dictionary, l Limits) (*Parser, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return &Parser{
		dict:   d,
		limits: l.withDefaults(),
	}, nil
}

// Dictionary returns the Dictionary the Parser uses.
func (p *Parser) Dictionary() *Dictionary {
	return p.dict
}

// Limits returns the effective Limits of the Parser.
func (p *Parser) Limits() Limits {
	return p.limits
}

// Parse converts the input into HTML. It never fails: the markup, which can't be interpreted,
// is left as plain text and reported in [Result.Warnings].
//
// The input is expected to have the HTML special characters already escaped.
func (p *Parser) Parse(input string) Result {
	// the capacity is validated by NewParser
	warns, _ := NewWarnings(WarnOverflowTrunc, p.limits.MaxWarnings)

	out := p.convert(input, 0, &warns, false)

	return Result{
		Output:   out,
		Warnings: warns.List(),
		Dropped:  warns.DroppedCount(),
	}
}

// Convert is the same as [Parser.Parse], but returns only the HTML.
func (p *Parser) Convert(input string) string {
	return p.Parse(input).Output
}

// convert runs the entire pipeline on the input at the recursion depth. The noAutolink flag
// is set for the input nested into a link, where the bare URLs must stay plain text.
func (p *Parser) convert(input string, depth int, warns *Warnings, noAutolink bool) string {
	s := newScanner(p, input, depth, warns)
	s.noAutolink = noAutolink
	s.run()
	s.closeAll()
	return finalize(s.out.String())
}

// breakReplacer normalizes the line feeds before the scanning.
var breakReplacer = strings.NewReplacer("\n", BreakTag)

// scanner holds the mutable state of a single convert call.
//
// The working document is scanned left to right exactly once. The text before the cursor is
// already emitted into out, either copied as is or replaced with HTML. A literal span rewritten
// by the autolink pass is scanned on its own, and the cursor then continues past the original
// span, so the rest of the document is never copied.
type scanner struct {
	p     *Parser
	dict  *Dictionary
	warns *Warnings
	depth int

	// src is the text being scanned: the working document, or a span rewritten by the autolink
	// pass, which starts at offset of the working document.
	src string

	// pos is the cursor inside src.
	pos int

	// offset is the position of src in the working document.
	offset int

	// inSpan is set while an autolinked span is scanned.
	inSpan bool

	// noAutolink disables the autolink pass for the whole scanner.
	noAutolink bool

	out   strings.Builder
	stack tagStack
}

func newScanner(p *Parser, input string, depth int, warns *Warnings) *scanner {
	s := &scanner{
		p:     p,
		dict:  p.dict,
		warns: warns,
		depth: depth,
		src:   breakReplacer.Replace(input),
	}

	s.out.Grow(len(s.src) + len(s.src)/4)
	return s
}

// run is the main loop: it emits the literal text up to the next '[' and then resolves the
// tag candidate.
func (s *scanner) run() {
	for s.pos < len(s.src) {
		end := len(s.src)
		if rel := strings.IndexByte(s.src[s.pos:], '['); rel >= 0 {
			end = s.pos + rel
		}

		if !s.autolink(end) {
			s.out.WriteString(s.src[s.pos:end])
			s.pos = end
		}

		if s.pos == len(s.src) {
			return
		}

		s.processBracket()
	}
}

// processBracket resolves the tag candidate at the cursor. Exactly one of: a closing tag,
// a dictionary tag, an itemcode or a false alarm.
func (s *scanner) processBracket() {
	rest := s.src[s.pos:]

	if len(rest) < 2 {
		s.literal()
		return
	}

	if rest[1] == '/' {
		if !s.processClosingTag() {
			s.literal()
		}
		return
	}

	selected, ok := s.processOpeningTag()
	if ok {
		return
	}

	// an item code is only considered when no tag claimed the bracket
	if !selected && s.processItemcode() {
		return
	}

	s.literal()
}

// literal emits the '[' at the cursor as a plain text.
func (s *scanner) literal() {
	s.out.WriteByte('[')
	s.pos++
}

// autolink rewrites the bare URLs of the literal span src[pos:end] and scans the result in
// place of the span. Returns false, with nothing emitted, if the span has no URLs.
//
// The positions of the Warnings raised inside the rewritten span are counted from the span start.
func (s *scanner) autolink(end int) bool {
	if !s.dict.autolink || s.noAutolink || s.inSpan || s.pos == end || s.stack.inLink() {
		return false
	}

	span := s.src[s.pos:end]
	rewritten := Autolink(span)
	if rewritten == span {
		return false
	}

	src, offset := s.src, s.offset
	s.src, s.pos, s.offset, s.inSpan = rewritten, 0, s.at(), true
	s.run()

	s.src, s.pos, s.offset, s.inSpan = src, end, offset, false
	return true
}

// skipWhitespace moves the cursor past the whitespace-like run.
func (s *scanner) skipWhitespace() {
	s.pos += whitespaceRun(s.src[s.pos:])
}

// at returns the position of the cursor in the working document.
func (s *scanner) at() int {
	return s.offset + s.pos
}

// closeAll closes all the remaining frames, innermost first. No trimming is applied.
func (s *scanner) closeAll() {
	for s.stack.len() > 0 {
		f := s.stack.pop()
		s.warns.add(IssueUnclosedTag, f.pos, "tag %q is not closed; closed at the end of the input", f.name)
		s.out.WriteString(f.after)
	}
}
