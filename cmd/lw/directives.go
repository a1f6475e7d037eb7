package main

import (
	"fmt"
	"strings"
)

// directivesHelp is itself laid out with directives.
var directivesHelp = strings.Join([]string{
	"A paragraph (one line of input) may begin with a directive that changes how it is laid out. " +
		"Directives are removed from the output.",
	"",
	row("indent ${<=N}", 16, "Indent every line of the paragraph by N extra columns."),
	row("merge ${<=-N}", 16, "Indent continuation lines by N columns and continue the previous line "+
		"instead of starting a new one. If the previous line is already full, the paragraph starts "+
		"on a new line, indented by N."),
	row("hard break", 16, "The token ${<==}. With \"lw format --split\" it splits a line in two "+
		"so that the text after the token wraps in a column that hangs under its starting point."),
	"",
	"A directive whose body is not a number is removed and otherwise ignored.",
}, "\n")

func cmdDirectives(w Writer) error {
	fmt.Fprintf(w, "%s\n", w.Style("Directives:", Cyan))
	w.Push(2)
	block(w, directivesHelp)
	w.Pop()
	return nil
}
