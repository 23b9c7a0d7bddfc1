package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

var errUnknownCommand = errors.New("unknown command")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Exec(ctx context.Context, name string, args []string) error
	Help() string
}

// runREPL starts a read–eval–print loop for the storefront CLI.
//
// It reads a line from src, parses the first token as the command and the
// rest as arguments, and dispatches to a.Exec. Arguments may be quoted to
// contain spaces. The loop exits on EOF, when ctx is cancelled, or when the
// user types "exit" or "quit". Ctrl-C only clears the current line.
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. Only unknown commands are reported by the loop.
func runREPL(ctx context.Context, a execIface, statusFn func() string, src lineSource) {
	for {
		if ctx.Err() != nil {
			return
		}

		prompt := fmt.Sprintf("art %s> ", statusFn())
		if ps, ok := src.(promptSetter); ok {
			ps.SetPrompt(prompt)
		} else {
			printlnFn(prompt)
		}

		line, err := src.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			printlnFn("Use 'exit' or 'quit' to exit the program.")
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				printlnFn("input error:", err)
			}
			return
		}

		parts := parseArgs(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn(a.Help())

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, parts[1:]); errors.Is(err, errUnknownCommand) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}

// parseArgs splits a line on spaces, keeping double-quoted runs together.
func parseArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes, quoted := false, false

	flush := func() {
		if current.Len() > 0 || quoted {
			args = append(args, current.String())
			current.Reset()
		}
		quoted = false
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			quoted = true
		case (r == ' ' || r == '\t') && !inQuotes:
			flush()
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return args
}
