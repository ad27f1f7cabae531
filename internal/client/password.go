package client

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// terminalPasswordReader reads a password without echo when in is a
// terminal.
type terminalPasswordReader struct {
	in     *os.File
	prompt io.Writer
}

func newTerminalPasswordReader(in *os.File, prompt io.Writer) *terminalPasswordReader {
	return &terminalPasswordReader{in: in, prompt: prompt}
}

func (r *terminalPasswordReader) ReadPassword(prompt string) (string, error) {
	fd := int(r.in.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoPassword
	}

	fmt.Fprint(r.prompt, prompt)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(r.prompt)
	if err != nil {
		return "", err
	}
	return string(password), nil
}
