package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestCommandMapContainsAllCommands(t *testing.T) {
	for _, name := range []string{"format", "fmt", "width", "directives", "config"} {
		if _, ok := commandMap[name]; !ok {
			t.Errorf("commandMap missing command %q", name)
		}
	}
}

func TestCommandMapHasNoNilRun(t *testing.T) {
	for _, cmd := range commands {
		if cmd.Run == nil {
			t.Errorf("command %q has nil Run", cmd.Name)
		}
		if cmd.Summary == "" {
			t.Errorf("command %q has empty Summary", cmd.Name)
		}
	}
}

func TestExamplesStartWithLw(t *testing.T) {
	for _, cmd := range commands {
		for _, ex := range cmd.Examples {
			if !strings.HasPrefix(ex.Cmd, "lw ") && !strings.Contains(ex.Cmd, "| lw ") {
				t.Errorf("command %q example %q does not run lw", cmd.Name, ex.Cmd)
			}
		}
	}
}

func TestPrintUsageContainsAllCommands(t *testing.T) {
	testEnv(t, "", 80)
	var buf bytes.Buffer
	printUsage(PlainWriter(&buf))
	out := buf.String()

	for _, cmd := range commands {
		if !strings.Contains(out, cmd.Name) {
			t.Errorf("printUsage output missing command %q", cmd.Name)
		}
		if !strings.Contains(out, cmd.Summary) {
			t.Errorf("printUsage output missing summary for %q: %q", cmd.Name, cmd.Summary)
		}
	}
	if strings.Contains(out, "${<=") {
		t.Errorf("directive leaked into usage:\n%s", out)
	}
	if !strings.Contains(out, `lw <command> --help`) {
		t.Error("missing help hint footer")
	}
}

func TestPrintUsageAlignsSummaries(t *testing.T) {
	testEnv(t, "", 80)
	var buf bytes.Buffer
	printUsage(PlainWriter(&buf))

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.HasPrefix(line, "  width ") {
			want := "  " + "width [flags]" + strings.Repeat(" ", 16) + "Print the width text will be wrapped to"
			if line != want {
				t.Errorf("width row = %q, want %q", line, want)
			}
			return
		}
	}
	t.Error("no width row in usage")
}

func TestPrintCommandHelp(t *testing.T) {
	testEnv(t, "", 80)
	var buf bytes.Buffer
	printCommandHelp(PlainWriter(&buf), commandMap["format"])
	out := buf.String()

	for _, want := range []string{"Usage:", "lw format [file] [flags]", "Arguments:", "Flags:", "-w, --width N", "--split", "Examples:"} {
		if !strings.Contains(out, want) {
			t.Errorf("help missing %q:\n%s", want, out)
		}
	}
}

func TestPrintCommandHelpNoExamples(t *testing.T) {
	testEnv(t, "", 80)
	cmd := &Command{
		Name:    "bare",
		Summary: "Bare command",
		Run:     func([]string, Writer) error { return nil },
	}

	var buf bytes.Buffer
	printCommandHelp(PlainWriter(&buf), cmd)
	out := buf.String()

	if !strings.HasPrefix(out, "Bare command\n") {
		t.Errorf("summary should stand in for description, got %q", out)
	}
	if strings.Contains(out, "Examples:") || strings.Contains(out, "Flags:") {
		t.Errorf("unexpected sections:\n%s", out)
	}
}

func TestPrintCommandHelpWrapsToWidth(t *testing.T) {
	testEnv(t, "", 50)
	var buf bytes.Buffer
	printCommandHelp(NewWriter(&buf, false, 50), commandMap["format"])
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	for i, line := range lines {
		if len(line) > 50 {
			t.Errorf("line %d is %d wide: %q", i, len(line), line)
		}
	}

	// --rev help hangs under its first word.
	for i, line := range lines {
		if strings.Contains(line, "-r, --rev REV") {
			if !strings.HasSuffix(line, "Read the file as") {
				t.Errorf("rev row = %q", line)
			}
			want := strings.Repeat(" ", 31) + "committed at REV in"
			if i+1 >= len(lines) || lines[i+1] != want {
				t.Errorf("continuation = %q, want %q", lines[i+1], want)
			}
			return
		}
	}
	t.Error("no --rev row in help")
}

func TestColorHelpStylesHeaders(t *testing.T) {
	testEnv(t, "", 80)
	var buf bytes.Buffer
	printCommandHelp(NewWriter(&buf, true, 80), commandMap["width"])
	out := buf.String()
	if !strings.Contains(out, "\033[36mFlags:\033[0m") {
		t.Errorf("Flags header not styled: %q", out)
	}
	if !strings.Contains(out, "\033[1mlw width [flags]\033[0m") {
		t.Errorf("usage line not bold: %q", out)
	}
	if !strings.Contains(stripANSI(out), "\nFlags:\n") {
		t.Errorf("stripped output missing Flags header: %q", stripANSI(out))
	}
}

func TestUsageRowsUseHardBreakLayout(t *testing.T) {
	testEnv(t, "", 80)
	got := row("name", 6, "help text")
	want := "name   \n${<=-7}help text"
	if got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}

func TestExpandAliases(t *testing.T) {
	flags := []Flag{
		{Long: "--width", Short: "-w", Value: "N"},
		{Long: "--indent", Short: "-i", Value: "N"},
		{Long: "--split"},
	}

	got := expandAliases([]string{"-w", "20", "-i", "2", "--split", "file.txt"}, flags)
	want := []string{"--width", "20", "--indent", "2", "--split", "file.txt"}
	if strings.Join(got, " ") != strings.Join(want, " ") {
		t.Errorf("expandAliases = %q, want %q", got, want)
	}
}

func TestCommandFlagKinds(t *testing.T) {
	cmd := commandMap["format"]
	vf := strings.Join(cmd.valueFlags(), " ")
	for _, name := range []string{"--width", "--indent", "--fallback-width", "--rev"} {
		if !strings.Contains(vf, name) {
			t.Errorf("valueFlags() missing %q", name)
		}
	}
	if bf := cmd.boolFlags(); len(bf) != 1 || bf[0] != "--split" {
		t.Errorf("boolFlags() = %q, want [--split]", bf)
	}
}

func TestRun(t *testing.T) {
	testEnv(t, "", 80)

	out, err := runCmd(t, "--version")
	if err != nil || out != "lw "+version+"\n" {
		t.Errorf("--version = %q, %v", out, err)
	}

	out, err = runCmd(t, "help", "width")
	if err != nil || !strings.Contains(out, "Print the resolved wrap width") {
		t.Errorf("help width = %q, %v", out, err)
	}

	out, err = runCmd(t, "width", "--help")
	if err != nil || !strings.Contains(out, "Flags:") {
		t.Errorf("width --help = %q, %v", out, err)
	}

	if _, err := runCmd(t, "bogus"); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("bogus command error = %v", err)
	}
}
