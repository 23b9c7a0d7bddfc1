package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// lineSource yields one line of user input per call. *readline.Instance
// satisfies it; tests use a slice-backed stub.
type lineSource interface {
	Readline() (string, error)
}

// promptSetter is implemented by sources that draw their own prompt.
type promptSetter interface {
	SetPrompt(prompt string)
}

// passwordSource is implemented by sources that can read without echo.
type passwordSource interface {
	ReadPassword(prompt string) ([]byte, error)
}

// readPassword and isTerminal are test seams for golang.org/x/term.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// GetSimpleText prints a prompt to w and reads a single line from src.
// Surrounding whitespace is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func GetSimpleText(src lineSource, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n"); err != nil {
		return "", err
	}
	if ps, ok := src.(promptSetter); ok {
		ps.SetPrompt("> ")
	}
	line, err := src.Readline()
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password without echo. A source that can mask input
// is used directly; otherwise an interactive stdin goes through
// term.ReadPassword, and piped input falls back to a plain line.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(src lineSource, prompt string, w io.Writer) ([]byte, error) {
	if ps, ok := src.(passwordSource); ok {
		return ps.ReadPassword(prompt + ": ")
	}

	fd := int(os.Stdin.Fd())
	if isTerminal(fd) {
		if _, err := fmt.Fprint(w, prompt+": "); err != nil {
			return nil, err
		}
		pw, err := readPassword(fd)
		fmt.Fprintln(w)
		if err != nil {
			return nil, err
		}
		return pw, nil
	}

	line, err := GetSimpleText(src, prompt, w)
	if err != nil {
		return nil, err
	}
	return []byte(line), nil
}

// promptDefault asks for a value showing the current one; empty input keeps
// it.
func promptDefault(src lineSource, label, current string, w io.Writer) (string, error) {
	text, err := getSimpleText(src, fmt.Sprintf("%s [%s]", label, current), w)
	if err != nil {
		return "", err
	}
	if text == "" {
		return current, nil
	}
	return text, nil
}
