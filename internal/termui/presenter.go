package termui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/jekabolt/grbpwr-tickets/internal/dependency"
)

// Terminal presents alerts and prompts on a line based terminal.
type Terminal struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
}

var _ dependency.Presenter = (*Terminal)(nil)

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Terminal) Alert(ctx context.Context, title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", alertStyle.Render(title), message)
}

// Notify prints the message. Printing counts as acknowledged.
func (t *Terminal) Notify(ctx context.Context, message string) <-chan struct{} {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, noticeStyle.Render(message))
	ack := make(chan struct{})
	close(ack)
	return ack
}

// Confirm asks a yes/no question. Anything but y or yes is a no, and so is
// a canceled context.
func (t *Terminal) Confirm(ctx context.Context, title, message string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s [y/N] ", titleStyle.Render(title), message)

	answer := make(chan string, 1)
	go func() {
		line, _ := t.in.ReadString('\n')
		answer <- line
	}()

	select {
	case <-ctx.Done():
		fmt.Fprintln(t.out)
		return false
	case line := <-answer:
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		}
		return false
	}
}
