package bbcode

// Issue defines types of problems we might encounter during the configuration or the parsing.
type Issue int

const (
	// IssueUnmatchedClosingTag means a closing tag has no opened counterpart on the stack.
	// The closing tag is left as plain text.
	IssueUnmatchedClosingTag Issue = iota

	// IssueEmptyClosingTag occurs on "[/]".
	IssueEmptyClosingTag

	// IssueUnterminatedTag means the closing ']' of the tag or of its parameter is missing.
	IssueUnterminatedTag

	// IssueMissingCloser means an unparsed-content tag has no closing tag in the rest of the input.
	IssueMissingCloser

	// IssueValidatorRejected means the Tag's [Validator] refused the captured values.
	IssueValidatorRejected

	// IssueAttributeMismatch means the tag header has a matching name, but its attributes do not
	// satisfy the Tag's schema in any order.
	IssueAttributeMismatch

	// IssueItemcodeOutsideList occurs when an itemcode is found outside of a list or a list item.
	IssueItemcodeOutsideList

	// IssueUnclosedTag means the tag was still opened at the end of the input and was closed
	// automatically.
	IssueUnclosedTag

	// IssueDepthExceeded means the parameter of a parsed-equals tag was nested deeper than
	// [Limits.MaxDepth] and was substituted verbatim.
	IssueDepthExceeded

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated

	// IssueNegativeWarningsCap reports an invalid (negative) warnings capacity.
	IssueNegativeWarningsCap

	// IssueNegativeLimit occurs during configuration when any value in [Limits] is negative.
	IssueNegativeLimit

	// IssueInvalidTagName occurs when the Tag's name is empty, too long, not lowercase or contains
	// symbols which break the tag syntax.
	IssueInvalidTagName

	// IssueInvalidKind occurs when the Kind is unknown.
	IssueInvalidKind

	// IssueInvalidTrim occurs when the Trim policy is unknown.
	IssueInvalidTrim

	// IssueMissingTemplate occurs when the template required by the Tag's Kind is empty.
	IssueMissingTemplate

	// IssueInvalidAttrPattern occurs when the attribute's name or pattern can't be compiled.
	IssueInvalidAttrPattern

	// IssueTooManyAttributes occurs when the schema is longer than [MaxSchemaAttributes].
	IssueTooManyAttributes

	// IssueDuplicateAttr occurs when two attributes of the same schema share the name.
	IssueDuplicateAttr

	// IssueInvalidItemcode occurs when the itemcode symbol is not a printable ASCII character or
	// is one of the symbols used by the tag syntax.
	IssueInvalidItemcode
)

var issueNames = map[Issue]string{
	IssueUnmatchedClosingTag: "unmatched closing tag",
	IssueEmptyClosingTag:     "empty closing tag",
	IssueUnterminatedTag:     "unterminated tag",
	IssueMissingCloser:       "missing closing tag",
	IssueValidatorRejected:   "validator rejected",
	IssueAttributeMismatch:   "attribute mismatch",
	IssueItemcodeOutsideList: "itemcode outside list",
	IssueUnclosedTag:         "unclosed tag",
	IssueDepthExceeded:       "depth exceeded",
	IssueWarningsTruncated:   "warnings truncated",
	IssueNegativeWarningsCap: "negative warnings cap",
	IssueNegativeLimit:       "negative limit",
	IssueInvalidTagName:      "invalid tag name",
	IssueInvalidKind:         "invalid kind",
	IssueInvalidTrim:         "invalid trim",
	IssueMissingTemplate:     "missing template",
	IssueInvalidAttrPattern:  "invalid attribute pattern",
	IssueTooManyAttributes:   "too many attributes",
	IssueDuplicateAttr:       "duplicate attribute",
	IssueInvalidItemcode:     "invalid itemcode",
}

func (i Issue) String() string {
	if s, ok := issueNames[i]; ok {
		return s
	}
	return "unknown issue"
}
