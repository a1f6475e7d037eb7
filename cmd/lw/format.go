package main

import (
	"fmt"
	"strings"

	"github.com/jallum/lexwrap/internal/logging"
	"github.com/jallum/lexwrap/internal/source"
	"github.com/jallum/lexwrap/internal/wrap"
)

// openRepo is replaced in tests.
var openRepo = source.OpenRepo

func cmdFormat(args []string, w Writer) error {
	a, err := parseFor("format", args)
	if err != nil {
		return err
	}
	cfg := settings
	if err := a.intFlag("--width", &cfg.Width); err != nil {
		return err
	}
	if err := a.intFlag("--indent", &cfg.Indent); err != nil {
		return err
	}
	if err := a.intFlag("--fallback-width", &cfg.FallbackWidth); err != nil {
		return err
	}
	if cfg.FallbackWidth == 0 {
		return fmt.Errorf("invalid --fallback-width: must be positive")
	}

	text, err := readInput(a)
	if err != nil {
		return err
	}
	text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

	if a.Bool("--split") {
		if !strings.Contains(text, wrap.HardBreak) {
			logging.Warn("--split given but input has no hard break", "token", wrap.HardBreak)
		}
		var lines []string
		for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
			lines = append(lines, wrap.SplitSubParagraphs(line)...)
		}
		text = strings.Join(lines, "\n")
	}

	logging.Debug("format", "width", cfg.Width, "indent", cfg.Indent, "bytes", len(text))
	fmt.Fprintln(w, wrap.Console(text, cfg.Indent, widthQuery(cfg.Width), cfg.FallbackWidth))
	return nil
}

// readInput loads the text named by the positional argument.
func readInput(a Args) (string, error) {
	name := a.PosFirst()
	if a.Has("--rev") {
		if name == "" || name == "-" {
			return "", fmt.Errorf("--rev needs a file path")
		}
		repo, err := openRepo(".")
		if err != nil {
			return "", err
		}
		return source.ReadRevision(repo, a.String("--rev"), name)
	}
	if name == "" || name == "-" {
		return source.Read(stdin)
	}
	return source.ReadFile(workFS, name)
}

// widthQuery reports the configured width, or asks the display when it
// is 0.
func widthQuery(configured int) wrap.WidthFunc {
	if configured > 0 {
		return wrap.Fixed(configured)
	}
	return display
}
