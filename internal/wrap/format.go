// Package wrap lays out free-form text as lines no wider than a target
// column count. Text is split into paragraphs on line breaks and each
// paragraph is word-wrapped on its own. A paragraph may start with a
// directive token (see DirectivePrefix) that adds indentation or joins it
// onto the line before.
package wrap

import (
	"strings"
	"unicode/utf8"
)

var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Text wraps s to width columns with no left indent.
//
// A width of zero or less disables wrapping and returns s unchanged.
func Text(s string, width int) string {
	if width <= 0 {
		return s
	}
	return Format(s, width, 0)
}

// Format wraps text to width columns, prefixing every line with indent
// spaces, and joins the result with "\n".
func Format(text string, width, indent int) string {
	return strings.Join(Lines(text, width, indent), "\n")
}

// Console is Format against the live display width. query is asked once;
// if it fails, fallback is used instead.
func Console(text string, indent int, query WidthFunc, fallback int) string {
	return Format(text, ResolveWidth(query, fallback), indent)
}

// Lines is Format without the final join. One paragraph always produces at
// least one line, so blank lines in text survive as blank (or indent-only)
// lines.
func Lines(text string, width, indent int) []string {
	if indent < 0 {
		indent = 0
	}
	avail := clamp(width-indent, 0, width)

	var out lineSequence
	for _, raw := range strings.Split(newlines.Replace(text), "\n") {
		out.add(ParseParagraph(raw), avail)
	}

	left := strings.Repeat(" ", indent)
	lines := out.lines
	for i := range lines {
		lines[i] = left + lines[i]
	}
	return lines
}

// maxPad bounds the padding a single directive can add to a line. The
// directive's magnitude still governs the width arithmetic.
const maxPad = 1 << 16

// lineSequence accumulates wrapped lines. Only the last line is ever
// rewritten, and only by a merging paragraph.
type lineSequence struct {
	lines []string
}

func (s *lineSequence) last() (string, bool) {
	if len(s.lines) == 0 {
		return "", false
	}
	return s.lines[len(s.lines)-1], true
}

func (s *lineSequence) replaceLast(line string) {
	s.lines[len(s.lines)-1] = line
}

func (s *lineSequence) append(lines ...string) {
	s.lines = append(s.lines, lines...)
}

// add wraps p into lines of at most avail runes and appends them.
func (s *lineSequence) add(p Paragraph, avail int) {
	extra := p.Directive.Magnitude
	cont := clamp(avail-extra, 0, avail)
	first := cont

	prev, hasPrev := s.last()
	merge := p.Directive.Kind == MergeIndent && hasPrev
	if merge {
		first = clamp(avail-runeLen(prev), 0, avail)
		if first == 0 {
			// No room left on the previous line.
			merge = false
			first = cont
		}
	}

	chunks := Chunks(p.Text, first, cont)
	pad := strings.Repeat(" ", min(extra, maxPad))
	for i := range chunks {
		if i > 0 || !merge {
			chunks[i] = pad + chunks[i]
		}
	}

	if merge {
		s.replaceLast(prev + chunks[0])
		chunks = chunks[1:]
	}
	s.append(chunks...)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
