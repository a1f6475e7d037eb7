package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/jallum/lexwrap/internal/config"
	"github.com/jallum/lexwrap/internal/logging"
	"github.com/jallum/lexwrap/internal/wrap"
)

const version = "0.1.0"

func main() {
	args, g, err := splitGlobals(os.Args[1:])
	if err != nil {
		fatal(err.Error())
	}
	level := logging.LevelWarn
	if g.verbose {
		level = logging.LevelDebug
	}
	logging.Init(os.Stderr, level, g.logFormat())

	configPath = g.config
	if settings, err = loadSettings(configPath); err != nil {
		fatal(err.Error())
	}
	logging.Debug("settings", "path", configPath, "width", settings.Width, "indent", settings.Indent)

	w := stdoutWriter(os.Stdout, settings)
	if len(args) < 1 {
		printUsage(w)
		os.Exit(1)
	}

	if err := run(args, w); err != nil {
		fatal(err.Error())
	}
}

// run dispatches a command line (without the program name).
func run(args []string, w Writer) error {
	name, rest := args[0], args[1:]
	switch name {
	case "--version", "-v":
		fmt.Fprintln(w, "lw "+version)
		return nil
	case "help", "--help", "-h":
		if len(rest) > 0 {
			if c := commandMap[rest[0]]; c != nil {
				printCommandHelp(w, c)
				return nil
			}
		}
		printUsage(w)
		return nil
	}

	c := commandMap[name]
	if c == nil {
		return fmt.Errorf("unknown command: %s (see \"lw --help\")", name)
	}
	for _, a := range rest {
		if a == "--help" || a == "-h" {
			printCommandHelp(w, c)
			return nil
		}
	}
	return c.Run(expandAliases(rest, c.Flags), w)
}

// stdoutWriter picks styling and width for out according to cfg.
func stdoutWriter(out *os.File, cfg config.Config) Writer {
	tty := term.IsTerminal(int(out.Fd()))
	color := cfg.Color == config.ColorAlways || (cfg.Color == config.ColorAuto && tty)
	width := cfg.Width
	if width == 0 && tty {
		width = wrap.ResolveWidth(display, 0)
	}
	return NewWriter(out, color, width)
}
