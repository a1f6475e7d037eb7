package main

import (
	"bytes"
	"io"
	"strings"
)

// Style is an ANSI text attribute.
type Style int

const (
	Bold Style = iota
	Dim
	Cyan
)

func (s Style) code() string {
	switch s {
	case Bold:
		return "\033[1m"
	case Dim:
		return "\033[2m"
	case Cyan:
		return "\033[36m"
	}
	return ""
}

// Writer is the output help and formatted text go through. It knows the
// display width and keeps a stack of left margins that it applies to every
// line written while they are pushed.
type Writer interface {
	io.Writer
	// Style wraps s in the given styles when the output is a color terminal.
	Style(s string, styles ...Style) string
	// Width is the room left right of the current margin, or 0 if the
	// display width is unknown.
	Width() int
	// Push moves the margin n columns right until the matching Pop.
	Push(n int)
	Pop()
}

type writer struct {
	out     io.Writer
	color   bool
	cols    int   // display columns, 0 = unknown
	margins []int // pushed margin widths
	margin  int   // sum of margins
	midLine bool  // last write did not end in '\n'
}

// NewWriter returns a Writer for out. cols is the display width, 0 if
// unknown.
func NewWriter(out io.Writer, color bool, cols int) Writer {
	return &writer{out: out, color: color, cols: cols}
}

// PlainWriter returns a Writer with no styling and no known width.
func PlainWriter(out io.Writer) Writer {
	return NewWriter(out, false, 0)
}

func (w *writer) Write(p []byte) (int, error) {
	if w.margin == 0 {
		n, err := w.out.Write(p)
		if n > 0 {
			w.midLine = p[n-1] != '\n'
		}
		return n, err
	}

	pad := []byte(strings.Repeat(" ", w.margin))
	written := 0
	for _, line := range bytes.SplitAfter(p, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if !w.midLine {
			if _, err := w.out.Write(pad); err != nil {
				return written, err
			}
		}
		n, err := w.out.Write(line)
		written += n
		if err != nil {
			return written, err
		}
		w.midLine = line[len(line)-1] != '\n'
	}
	return written, nil
}

func (w *writer) Style(s string, styles ...Style) string {
	if !w.color || len(styles) == 0 {
		return s
	}
	var codes strings.Builder
	for _, st := range styles {
		codes.WriteString(st.code())
	}
	return codes.String() + s + "\033[0m"
}

func (w *writer) Width() int {
	if w.cols == 0 {
		return 0
	}
	return max(w.cols-w.margin, 1)
}

func (w *writer) Push(n int) {
	w.margins = append(w.margins, n)
	w.margin += n
}

func (w *writer) Pop() {
	if k := len(w.margins); k > 0 {
		w.margin -= w.margins[k-1]
		w.margins = w.margins[:k-1]
	}
}
