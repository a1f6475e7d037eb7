package main

import (
	"fmt"
	"strings"

	"github.com/jallum/lexwrap/internal/wrap"
)

// Flag describes a single command-line flag.
type Flag struct {
	Long  string // e.g. "--width"
	Short string // e.g. "-w" (optional)
	Value string // metavar for help, e.g. "N"; empty means boolean
	Help  string
}

// Positional describes a positional argument.
type Positional struct {
	Name     string // e.g. "[file]"
	Required bool
	Help     string
}

// Example describes a usage example shown in per-command help.
type Example struct {
	Cmd  string
	Help string
}

// Command describes a CLI subcommand.
type Command struct {
	Name        string
	Aliases     []string
	Summary     string // one-line description for top-level usage
	Description string // shown in per-command help (falls back to Summary); may carry directives
	Positionals []Positional
	Flags       []Flag
	Examples    []Example
	Run         func(args []string, w Writer) error
}

// valueFlags returns the long names of flags that take a value (non-boolean).
func (c *Command) valueFlags() []string {
	var vf []string
	for _, f := range c.Flags {
		if f.Value != "" {
			vf = append(vf, f.Long)
		}
	}
	return vf
}

// boolFlags returns the long names of flags that take no value.
func (c *Command) boolFlags() []string {
	var bf []string
	for _, f := range c.Flags {
		if f.Value == "" {
			bf = append(bf, f.Long)
		}
	}
	return bf
}

// expandAliases replaces short flags with their long equivalents.
func expandAliases(raw []string, flags []Flag) []string {
	shorts := make(map[string]string, len(flags))
	for _, f := range flags {
		if f.Short != "" {
			shorts[f.Short] = f.Long
		}
	}
	result := make([]string, len(raw))
	for i, tok := range raw {
		if long, ok := shorts[tok]; ok {
			result[i] = long
		} else {
			result[i] = tok
		}
	}
	return result
}

var (
	widthFlag    = Flag{Long: "--width", Short: "-w", Value: "N", Help: "Wrap at N columns instead of the terminal width"}
	fallbackFlag = Flag{Long: "--fallback-width", Value: "N", Help: "Width to use when no terminal is attached"}
)

// commands defines all CLI subcommands.
var commands = []Command{
	{
		Name:    "format",
		Aliases: []string{"fmt"},
		Summary: "Wrap text to the terminal width",
		Description: "Word-wrap text read from a file, from standard input, or from a file at a git revision. " +
			"Lines break only at spaces; a word wider than the line is printed whole on a line of its own. " +
			"Paragraphs may start with indent directives; run \"lw directives\" for the syntax.",
		Positionals: []Positional{
			{Name: "[file]", Help: "Input file (default or \"-\": standard input)"},
		},
		Flags: []Flag{
			widthFlag,
			{Long: "--indent", Short: "-i", Value: "N", Help: "Indent every line by N spaces"},
			fallbackFlag,
			{Long: "--rev", Short: "-r", Value: "REV", Help: "Read the file as committed at REV in the enclosing git repository"},
			{Long: "--split", Help: "Treat the hard break token in each line as a hanging indent point"},
		},
		Examples: []Example{
			{Cmd: "lw format README.txt --width 60"},
			{Cmd: "lw format notes.txt --rev HEAD~1", Help: "Format the previous committed version"},
			{Cmd: "echo 'some text' | lw format -w 10 -i 2"},
		},
		Run: cmdFormat,
	},
	{
		Name:        "width",
		Summary:     "Print the width text will be wrapped to",
		Description: "Print the resolved wrap width: the configured width if set, otherwise the terminal width, otherwise the fallback.",
		Flags:       []Flag{widthFlag, fallbackFlag},
		Examples: []Example{
			{Cmd: "lw width"},
			{Cmd: "lw width --fallback-width 100 | cat", Help: "Piped output has no terminal, so the fallback is printed"},
		},
		Run: cmdWidth,
	},
	{
		Name:    "directives",
		Summary: "Describe the indent directive syntax",
		Run:     wrapNoArgs(cmdDirectives),
	},
	{
		Name:        "config",
		Summary:     "Show or create the config file",
		Description: "Show the effective settings, or write a config file holding the defaults.\nSubcommands: show, init.",
		Positionals: []Positional{
			{Name: "[show|init]", Help: "Action (default: show)"},
		},
		Flags: []Flag{
			{Long: "--force", Help: "Overwrite an existing file (init)"},
		},
		Examples: []Example{
			{Cmd: "lw config"},
			{Cmd: "lw config init", Help: "Write .lw.yaml with the defaults"},
		},
		Run: cmdConfig,
	},
}

// wrapNoArgs adapts a func(Writer) error to the standard command signature.
func wrapNoArgs(fn func(w Writer) error) func([]string, Writer) error {
	return func(_ []string, w Writer) error {
		return fn(w)
	}
}

// commandMap provides O(1) lookup by name.
var commandMap map[string]*Command

func init() {
	commandMap = make(map[string]*Command, len(commands))
	for i := range commands {
		commandMap[commands[i].Name] = &commands[i]
		for _, alias := range commands[i].Aliases {
			commandMap[alias] = &commands[i]
		}
	}
}

// helpWidth is the width help text is wrapped to.
func helpWidth(w Writer) int {
	if n := w.Width(); n > 0 {
		return n
	}
	return settings.FallbackWidth
}

// row lays out name in a column col wide with help hanging beside it.
// name must not contain wrap.HardBreak.
func row(name string, col int, help string) string {
	head := fmt.Sprintf("%-*s ", col, name)
	return strings.Join(wrap.SplitSubParagraphs(head+wrap.HardBreak+help), "\n")
}

// block wraps text to the writer's width and writes it.
func block(w Writer, text string) {
	fmt.Fprintln(w, wrap.Text(text, helpWidth(w)))
}

func printUsage(w Writer) {
	block(w, "lw — wrap text to the terminal, honouring indent directives")
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, w.Style("lw <command> [args]", Bold))
	fmt.Fprintln(w, w.Style("lw <command> --help", Bold))
	w.Pop()

	fmt.Fprintf(w, "\n%s\n", w.Style("Commands:", Cyan))
	w.Push(2)
	var rows []string
	for _, c := range commands {
		usage := c.Name
		for _, p := range c.Positionals {
			usage += " " + p.Name
		}
		if len(c.Flags) > 0 {
			usage += " [flags]"
		}
		rows = append(rows, row(usage, 28, c.Summary))
	}
	block(w, strings.Join(rows, "\n"))
	w.Pop()

	fmt.Fprintf(w, "\n%s\n", w.Style("Global flags:", Cyan))
	w.Push(2)
	block(w, row("--config PATH", 28, "Read settings from PATH (default .lw.yaml)")+"\n"+
		row("--verbose", 28, "Log diagnostics to stderr")+"\n"+
		row("--log-json", 28, "Write log records as JSON"))
	w.Pop()

	fmt.Fprintf(w, "\n%s\n", w.Style(`Use "lw <command> --help" for more information about a command.`, Dim))
}

func printCommandHelp(w Writer, c *Command) {
	desc := c.Description
	if desc == "" {
		desc = c.Summary
	}
	block(w, desc)

	usage := "lw " + c.Name
	for _, p := range c.Positionals {
		usage += " " + p.Name
	}
	if len(c.Flags) > 0 {
		usage += " [flags]"
	}
	fmt.Fprintf(w, "\n%s\n", w.Style("Usage:", Cyan))
	w.Push(2)
	fmt.Fprintln(w, w.Style(usage, Bold))
	w.Pop()

	if len(c.Positionals) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Arguments:", Cyan))
		w.Push(2)
		var rows []string
		for _, p := range c.Positionals {
			rows = append(rows, row(p.Name, 24, p.Help))
		}
		block(w, strings.Join(rows, "\n"))
		w.Pop()
	}

	if len(c.Flags) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Flags:", Cyan))
		w.Push(2)
		var rows []string
		for _, f := range c.Flags {
			flag := f.Long
			if f.Short != "" {
				flag = f.Short + ", " + f.Long
			}
			if f.Value != "" {
				flag += " " + f.Value
			}
			rows = append(rows, row(flag, 28, f.Help))
		}
		block(w, strings.Join(rows, "\n"))
		w.Pop()
	}

	if len(c.Examples) > 0 {
		fmt.Fprintf(w, "\n%s\n", w.Style("Examples:", Cyan))
		w.Push(2)
		for _, ex := range c.Examples {
			fmt.Fprintln(w, ex.Cmd)
			if ex.Help != "" {
				w.Push(4)
				block(w, ex.Help)
				w.Pop()
			}
		}
		w.Pop()
	}
}
