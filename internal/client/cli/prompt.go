package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// termPrompter shows alerts and confirmations on the terminal.
type termPrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *termPrompter) Alert(_ context.Context, msg string) {
	fmt.Fprintf(p.out, "! %s\n", msg)
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (p *termPrompter) Confirm(_ context.Context, msg string) bool {
	answer, err := GetSimpleText(p.reader, msg+" [y/N]", p.out)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
