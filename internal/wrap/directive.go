package wrap

import (
	"strconv"
	"strings"
)

// DirectivePrefix opens an indent directive. A directive is only honoured at
// the very start of a paragraph: "${<=4}text" indents text by four extra
// columns, "${<=-4}text" indents by four and joins the first wrapped line onto
// the previously emitted one.
const DirectivePrefix = "${<="

// HardBreak separates two pieces of a single line that should be laid out as
// one continuous run, the second hanging under the end of the first. See
// SplitSubParagraphs.
const HardBreak = "${<==}"

// Kind says what a directive asks the composer to do.
type Kind int

const (
	// Indent shifts every line of the paragraph right.
	Indent Kind = iota
	// MergeIndent shifts continuation lines right and appends the first line
	// to the end of the previous paragraph's last line.
	MergeIndent
)

func (k Kind) String() string {
	switch k {
	case Indent:
		return "indent"
	case MergeIndent:
		return "merge"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Directive is the parsed form of a "${<=N}" token. The zero value means
// "no extra indent, no merge".
type Directive struct {
	Kind      Kind
	Magnitude int
}

// String renders d back into its token form. The zero directive renders as
// the empty string.
func (d Directive) String() string {
	if d == (Directive{}) {
		return ""
	}
	sign := ""
	if d.Kind == MergeIndent {
		sign = "-"
	}
	return DirectivePrefix + sign + strconv.Itoa(d.Magnitude) + "}"
}

// Paragraph is one newline-delimited segment of input with its directive
// already separated from the text.
type Paragraph struct {
	Text      string
	Directive Directive
}

// ParseParagraph splits the leading directive (if any) off raw.
func ParseParagraph(raw string) Paragraph {
	d, text := ParseDirective(raw)
	return Paragraph{Text: text, Directive: d}
}

// ParseDirective recognizes a directive token at the start of paragraph and
// returns it along with the remaining text. A token whose body is not an
// optional '-' followed by digits still gets stripped but yields the zero
// directive. Text that does not start with a complete token is returned
// untouched.
func ParseDirective(paragraph string) (Directive, string) {
	if !strings.HasPrefix(paragraph, DirectivePrefix) {
		return Directive{}, paragraph
	}
	end := strings.IndexByte(paragraph[len(DirectivePrefix):], '}')
	if end < 0 {
		return Directive{}, paragraph
	}
	body := paragraph[len(DirectivePrefix) : len(DirectivePrefix)+end]
	rest := paragraph[len(DirectivePrefix)+end+1:]

	n, ok := parseOffset(body)
	switch {
	case !ok || n == 0:
		return Directive{}, rest
	case n < 0:
		return Directive{Kind: MergeIndent, Magnitude: -n}, rest
	default:
		return Directive{Kind: Indent, Magnitude: n}, rest
	}
}

// parseOffset accepts an optional leading '-' followed by one or more digits.
func parseOffset(body string) (int, bool) {
	digits := strings.TrimPrefix(body, "-")
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(body)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SplitSubParagraphs splits text on the first HardBreak into at most two
// pieces. When a split happens the second piece is given a merge directive
// as wide as the first piece, so that once both are fed to Format (joined by
// a newline) the second piece continues the first piece's line and its own
// continuation lines hang beneath where it started.
func SplitSubParagraphs(text string) []string {
	head, tail, found := strings.Cut(text, HardBreak)
	if !found {
		return []string{text}
	}
	d := Directive{Kind: MergeIndent, Magnitude: runeLen(head)}
	return []string{head, d.String() + tail}
}
