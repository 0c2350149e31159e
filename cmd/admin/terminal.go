package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// terminal is the CLI face of the views: alerts and prompts go to w, answers
// come from r.
type terminal struct {
	r      *bufio.Reader
	fd     int
	isTTY  bool
	w      io.Writer
	logger *slog.Logger
	route  string
}

func newTerminal(r io.Reader, w io.Writer, logger *slog.Logger) *terminal {
	t := &terminal{r: bufio.NewReader(r), w: w, logger: logger, fd: -1}
	if f, ok := r.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.isTTY = true
	}
	return t
}

func (t *terminal) Alert(msg string) {
	fmt.Fprintln(t.w, msg)
}

// ScrollToTop has nothing to do on a terminal.
func (t *terminal) ScrollToTop() {}

// ClearFileInput has nothing to do on a terminal.
func (t *terminal) ClearFileInput() {}

// Confirm asks prompt and accepts "s", "si", "sí", "y" or "yes".
func (t *terminal) Confirm(prompt string) bool {
	fmt.Fprintf(t.w, "%s [s/N]: ", prompt)
	answer, err := t.readLine()
	if err != nil {
		fmt.Fprintln(t.w)
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

func (t *terminal) Navigate(route string) {
	t.route = route
	t.logger.Debug("navigate", "route", route)
}

// Prompt asks for a line of input.
func (t *terminal) Prompt(label string) (string, error) {
	fmt.Fprintf(t.w, "%s: ", label)
	return t.readLine()
}

// Password asks for a secret without echo when stdin is a terminal.
func (t *terminal) Password(label string) (string, error) {
	fmt.Fprintf(t.w, "%s: ", label)
	if !t.isTTY {
		return t.readLine()
	}
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.w)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	return string(b), nil
}

func (t *terminal) readLine() (string, error) {
	line, err := t.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
