package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"

	"github.com/jallum/lexwrap/internal/config"
	"github.com/jallum/lexwrap/internal/wrap"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRe.ReplaceAllString(s, "") }

// testEnv swaps the process environment for an in-memory one and restores
// it when the test ends.
func testEnv(t *testing.T, input string, width int) billy.Filesystem {
	t.Helper()
	origStdin, origFS, origDisplay, origSettings, origPath := stdin, workFS, display, settings, configPath
	t.Cleanup(func() {
		stdin, workFS, display, settings, configPath = origStdin, origFS, origDisplay, origSettings, origPath
	})

	fs := memfs.New()
	stdin = strings.NewReader(input)
	workFS = fs
	display = wrap.Fixed(width)
	settings = config.Default()
	configPath = config.DefaultPath
	return fs
}

// runCmd runs a command line against a plain writer and returns its output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := run(args, PlainWriter(&buf))
	return buf.String(), err
}
