package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/jallum/lexwrap/internal/config"
	"github.com/jallum/lexwrap/internal/logging"
	"github.com/jallum/lexwrap/internal/wrap"
)

// Process environment. Tests swap these out.
var (
	stdin   io.Reader        = os.Stdin
	workFS  billy.Filesystem = osfs.New(".")
	display wrap.WidthFunc   = wrap.Terminal(int(os.Stdout.Fd()))
)

// Settings in effect, loaded by main.
var (
	settings   = config.Default()
	configPath = config.DefaultPath
)

func fatal(msg string) {
	fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	os.Exit(1)
}

// globals holds flags accepted before or after any command.
type globals struct {
	verbose bool
	logJSON bool
	config  string
}

// logFormat is the log output format the globals ask for.
func (g globals) logFormat() logging.Format {
	if g.logJSON {
		return logging.FormatJSON
	}
	return logging.FormatText
}

// splitGlobals removes --verbose, --log-json and --config PATH from raw.
func splitGlobals(raw []string) ([]string, globals, error) {
	g := globals{config: config.DefaultPath}
	rest := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case "--verbose":
			g.verbose = true
		case "--log-json":
			g.logJSON = true
		case "--config":
			if i+1 >= len(raw) {
				return nil, g, fmt.Errorf("--config requires a path")
			}
			g.config = raw[i+1]
			i++
		default:
			rest = append(rest, raw[i])
		}
	}
	return rest, g, nil
}

// loadSettings reads the config file at path and applies environment
// overrides.
func loadSettings(path string) (config.Config, error) {
	cfg, err := config.Load(workFS, path)
	if err != nil {
		return cfg, err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Args holds parsed command-line arguments separated into boolean flags,
// key-value flags, and positional arguments.
type Args struct {
	bools map[string]bool
	flags map[string]string
	pos   []string
}

// ParseArgs separates raw args into booleans, key-value pairs, and positionals.
// valueFlags lists flags that consume the next token as a value (e.g. "--width").
// boolFlags lists boolean flags (e.g. "--split").
// Any "--" prefixed token not in valueFlags or boolFlags returns an error.
// A lone "-" is a positional (stdin).
func ParseArgs(raw []string, valueFlags []string, boolFlags []string) (Args, error) {
	vf := make(map[string]bool, len(valueFlags))
	for _, f := range valueFlags {
		vf[f] = true
	}
	bf := make(map[string]bool, len(boolFlags))
	for _, f := range boolFlags {
		bf[f] = true
	}

	a := Args{
		bools: make(map[string]bool),
		flags: make(map[string]string),
	}

	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if !strings.HasPrefix(tok, "--") {
			a.pos = append(a.pos, tok)
			continue
		}

		if vf[tok] {
			if i+1 >= len(raw) {
				return a, fmt.Errorf("%s requires a value", tok)
			}
			a.flags[tok] = raw[i+1]
			i++
		} else if bf[tok] {
			a.bools[tok] = true
		} else {
			return a, fmt.Errorf("unknown flag: %s", tok)
		}
	}
	return a, nil
}

// parseFor parses args against the flags declared for the named command.
func parseFor(name string, args []string) (Args, error) {
	c := commandMap[name]
	return ParseArgs(args, c.valueFlags(), c.boolFlags())
}

// Bool returns true if the named boolean flag was present.
func (a Args) Bool(name string) bool { return a.bools[name] }

// String returns the value of a key-value flag, or "" if absent.
func (a Args) String(name string) string { return a.flags[name] }

// IntErr returns the parsed int, whether the flag was set, and any parse error.
func (a Args) IntErr(name string) (int, bool, error) {
	v, ok := a.flags[name]
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, true, fmt.Errorf("invalid %s: %s", name, v)
	}
	return n, true, nil
}

// intFlag overrides *dst with the non-negative int flag name, if given.
func (a Args) intFlag(name string, dst *int) error {
	n, ok, err := a.IntErr(name)
	if err != nil || !ok {
		return err
	}
	if n < 0 {
		return fmt.Errorf("invalid %s: %d is negative", name, n)
	}
	*dst = n
	return nil
}

// Has returns true if a key-value flag was provided.
func (a Args) Has(name string) bool {
	_, ok := a.flags[name]
	return ok
}

// Pos returns all positional arguments.
func (a Args) Pos() []string { return a.pos }

// PosFirst returns the first positional argument, or "" if none.
func (a Args) PosFirst() string {
	if len(a.pos) > 0 {
		return a.pos[0]
	}
	return ""
}
