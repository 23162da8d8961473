package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ConsolePrompter asks yes/no questions on the terminal and prints
// notifications to stderr.
type ConsolePrompter struct {
	In  io.Reader
	Out io.Writer
}

// NewConsolePrompter returns a prompter bound to stdin/stderr.
func NewConsolePrompter() *ConsolePrompter {
	return &ConsolePrompter{In: os.Stdin, Out: os.Stderr}
}

// Confirm asks a yes/no question and blocks for the answer.
// Anything other than "y"/"yes" counts as no.
func (p *ConsolePrompter) Confirm(msg string) bool {
	fmt.Fprintf(p.Out, "%s [y/N]: ", msg)
	scanner := bufio.NewScanner(p.In)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// Notify prints a one-line notification with a level prefix.
func (p *ConsolePrompter) Notify(msg string, level Level) {
	fmt.Fprintf(p.Out, "[%s] %s\n", level, msg)
}
