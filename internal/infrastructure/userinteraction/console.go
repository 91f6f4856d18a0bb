package userinteraction

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"orbit-assistant/internal/application/port/output"

	"github.com/fatih/color"
)

var _ output.UserInteractionPort = (*ConsoleUserInteraction)(nil)

// ErrInputClosed is returned by AskQuestion once stdin is exhausted.
var ErrInputClosed = errors.New("input closed")

type ConsoleUserInteraction struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleUserInteraction() *ConsoleUserInteraction {
	return NewConsole(os.Stdin, os.Stdout)
}

func NewConsole(in io.Reader, out io.Writer) *ConsoleUserInteraction {
	return &ConsoleUserInteraction{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

func (u *ConsoleUserInteraction) AskQuestion(ctx context.Context, question string) (string, error) {
	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintf(u.out, "\n%s\n> ", question)

	answer, err := u.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(answer) != "" {
			return strings.TrimSpace(answer), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	return strings.TrimSpace(answer), nil
}

func (u *ConsoleUserInteraction) ShowAnswer(ctx context.Context, content string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprint(u.out, "\nOrbit: ")
	fmt.Fprintln(u.out, content)
}

func (u *ConsoleUserInteraction) ShowError(ctx context.Context, message string) {
	red := color.New(color.FgRed)
	red.Fprint(u.out, "\nError: ")

	dim := color.New(color.Faint)
	dim.Fprintln(u.out, truncate(message, 300))
}

func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen]) + "..."
}
