package bbcode

// isASCIIPrintable returns true if the byte is a printable ASCII character, that is
// its value is between 32 and 126.
func isASCIIPrintable(b byte) bool {
	// Printable ASCII characters are in the range 32 (space) to 126 (~)
	return b >= 32 && b <= 126
}

// isReserved returns true for the symbols which are part of the tag syntax itself.
func isReserved(b byte) bool {
	switch b {
	case ' ', '[', ']', '=', '/', '\\':
		return true
	}
	return false
}

// lower returns the lowercase version of the ASCII letter, or b itself.
func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// hasPrefixFold reports whether s starts with the lowercase ASCII prefix, ignoring the case of s.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}

	for i := 0; i < len(prefix); i++ {
		if lower(s[i]) != prefix[i] {
			return false
		}
	}

	return true
}

// indexFold returns the index of the first occurrence of the lowercase ASCII substr in s,
// ignoring the case of s, or -1.
func indexFold(s, substr string) int {
	n := len(substr)
	if n == 0 {
		return 0
	}

	first := substr[0]
	for i := 0; i+n <= len(s); i++ {
		if lower(s[i]) == first && hasPrefixFold(s[i:], substr) {
			return i
		}
	}

	return -1
}

// indexUnescaped returns the index of the first c in s, which is not preceded by a backslash, or -1.
func indexUnescaped(s string, c byte) int {
	escaped := false
	for i := 0; i < len(s); i++ {
		switch {
		case escaped:
			escaped = false
		case s[i] == '\\':
			escaped = true
		case s[i] == c:
			return i
		}
	}

	return -1
}

// whitespaceRun returns the length of the run of whitespace-like sequences at the start of s:
// [BreakTag], [NBSP] and ASCII whitespace.
func whitespaceRun(s string) int {
	i := 0
	for i < len(s) {
		switch {
		case s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\f' || s[i] == '\v':
			i++
		case len(s)-i >= len(BreakTag) && s[i:i+len(BreakTag)] == BreakTag:
			i += len(BreakTag)
		case len(s)-i >= len(NBSP) && s[i:i+len(NBSP)] == NBSP:
			i += len(NBSP)
		default:
			return i
		}
	}

	return i
}
