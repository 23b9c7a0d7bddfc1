package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/chzyer/readline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptSource replays lines and then reports EOF. An entry equal to
// interruptLine yields readline.ErrInterrupt.
type scriptSource struct {
	lines   []string
	i       int
	prompts []string
}

const interruptLine = "\x03"

func (s *scriptSource) Readline() (string, error) {
	if s.i >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.i]
	s.i++
	if line == interruptLine {
		return "", readline.ErrInterrupt
	}
	return line, nil
}

func (s *scriptSource) feed(lines ...string) {
	s.lines, s.i = lines, 0
}

type promptingSource struct {
	scriptSource
}

func (s *promptingSource) SetPrompt(p string) { s.prompts = append(s.prompts, p) }

type fakeExec struct {
	calls []string
}

func (f *fakeExec) Exec(ctx context.Context, name string, args []string) error {
	if name == "bogus" {
		return errUnknownCommand
	}
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, ",")))
	return nil
}

func (f *fakeExec) Help() string { return "HELP" }

func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var out []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &out
}

func TestRunREPL_DispatchesAndQuits(t *testing.T) {
	out := capturePrintln(t)

	src := &scriptSource{lines: []string{
		"",
		"help",
		"shop",
		`search "blue sky" now`,
		"bogus",
		interruptLine,
		"exit",
		"cart",
	}}
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(guest /)" }, src)

	assert.Equal(t, []string{"shop", "search blue sky,now"}, exec.calls)
	assert.Contains(t, *out, "HELP")
	assert.Contains(t, *out, "Unknown command: bogus")
	assert.Contains(t, *out, "Use 'exit' or 'quit' to exit the program.")
	assert.Equal(t, "Bye!", (*out)[len(*out)-1])
	assert.Contains(t, *out, "art (guest /)> ")
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	capturePrintln(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, &scriptSource{lines: []string{"shop"}})
	assert.Equal(t, []string{"shop"}, exec.calls)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, &scriptSource{lines: []string{"shop"}})
	assert.Empty(t, exec.calls)
}

func TestRunREPL_UsesSourcePrompt(t *testing.T) {
	out := capturePrintln(t)

	src := &promptingSource{}
	src.feed("quit")
	runREPL(context.Background(), &fakeExec{}, func() string { return "(admin /admin-home)" }, src)

	require.Len(t, src.prompts, 1)
	assert.Equal(t, "art (admin /admin-home)> ", src.prompts[0])
	assert.Equal(t, []string{"Bye!"}, *out)
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"cart", []string{"cart"}},
		{"  qty   3  2 ", []string{"qty", "3", "2"}},
		{`category "Oil Painting"`, []string{"category", "Oil Painting"}},
		{`search ""`, []string{"search", ""}},
		{"price\t10\t50", []string{"price", "10", "50"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArgs(tt.in))
		})
	}
}
