package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalPrompter shows alerts and confirmations on the terminal.
type terminalPrompter struct {
	reader *bufio.Reader
	w      io.Writer
}

func newTerminalPrompter(reader *bufio.Reader, w io.Writer) *terminalPrompter {
	return &terminalPrompter{reader: reader, w: w}
}

func (p *terminalPrompter) Alert(title, message string) {
	fmt.Fprintf(p.w, "[%s] %s\n", title, message)
}

// Confirm accepts the ok label or its first letter, case-insensitively.
// Anything else, including a read error, cancels.
func (p *terminalPrompter) Confirm(title, message, cancelLabel, okLabel string) bool {
	ok := strings.ToLower(okLabel)
	fmt.Fprintf(p.w, "[%s] %s (%s/%s)\n> ", title, message, strings.ToLower(cancelLabel), ok)

	line, err := readLine(p.reader)
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return ok != "" && answer != "" && (answer == ok || answer == ok[:1])
}
