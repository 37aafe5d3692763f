package speech

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

var (
	assistantName = color.New(color.FgCyan, color.Bold).SprintFunc()
	notice        = color.New(color.FgHiBlack).SprintFunc()
)

// ConsoleConfig configures a console engine.
type ConsoleConfig struct {
	// Retries is the number of reads Listen makes before giving up.
	Retries int
	// HistoryFile keeps previous utterances across sessions when set.
	HistoryFile string

	Stdin  io.Reader
	Stdout io.Writer
}

// lineReader is the part of *readline.Instance the console reads from.
type lineReader interface {
	Readline() (string, error)
	Close() error
}

// Console is a terminal stand-in for microphone and speaker: utterances are
// typed lines and speech is printed.
type Console struct {
	rl      lineReader
	out     io.Writer
	retries int
}

// NewConsole creates a console engine.
func NewConsole(cfg ConsoleConfig) (*Console, error) {
	if cfg.Retries <= 0 {
		cfg.Retries = DefaultRetries
	}
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            color.GreenString("you> "),
		HistoryFile:       cfg.HistoryFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdin:             readline.NewCancelableStdin(cfg.Stdin),
		Stdout:            cfg.Stdout,
		Stderr:            cfg.Stdout,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize readline")
	}

	return newConsole(rl, cfg.Stdout, cfg.Retries), nil
}

func newConsole(rl lineReader, out io.Writer, retries int) *Console {
	if retries <= 0 {
		retries = DefaultRetries
	}
	return &Console{rl: rl, out: out, retries: retries}
}

func (c *Console) Listen(ctx context.Context, prompt string) (string, error) {
	if prompt != "" {
		c.Speak(prompt)
	}

	for range c.retries {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		line, err := c.rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt), errors.Is(err, io.EOF):
			return "", ErrClosed
		case err != nil:
			return "", errors.Wrap(err, "failed to read utterance")
		}

		if text := strings.ToLower(strings.TrimSpace(line)); text != "" {
			return text, nil
		}
		c.Speak(notice("You were silent. Please try again."))
	}
	return "", nil
}

func (c *Console) Speak(text string) {
	fmt.Fprintf(c.out, "%s %s\n", assistantName("Laddoo:"), text)
}

func (c *Console) Close() error {
	return c.rl.Close()
}

// Ensure Console implements Engine
var _ Engine = (*Console)(nil)
