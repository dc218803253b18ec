package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Prateek-Kumar98217/langraph-test/log"
)

// DefaultFallbackPrompt is sent after a failed turn.
const DefaultFallbackPrompt = "what is the secret of life?"

// DefaultSentinels end the loop, compared case-insensitively.
var DefaultSentinels = []string{"quit", "exit", "q", "bye"}

// TurnFunc runs one user turn. It calls emit for every reply it wants shown.
type TurnFunc func(ctx context.Context, text string, emit func(reply string)) error

// REPL is a read-eval-print loop over a TurnFunc.
type REPL struct {
	turn      TurnFunc
	in        io.Reader
	out       io.Writer
	fallback  string
	sentinels []string
	logger    log.Logger

	user      lipgloss.Style
	assistant lipgloss.Style
	notice    lipgloss.Style
}

// Option configures a REPL.
type Option func(*REPL)

// WithInput sets where lines are read from. Default os.Stdin.
func WithInput(r io.Reader) Option {
	return func(c *REPL) { c.in = r }
}

// WithOutput sets where prompts and replies are written. Default os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *REPL) { c.out = w }
}

// WithFallbackPrompt sets the text sent after a failed turn. An empty prompt
// disables the fallback.
func WithFallbackPrompt(p string) Option {
	return func(c *REPL) { c.fallback = p }
}

// WithSentinels replaces the words that end the loop.
func WithSentinels(words ...string) Option {
	return func(c *REPL) { c.sentinels = words }
}

// WithLogger sets the logger for failed turns.
func WithLogger(l log.Logger) Option {
	return func(c *REPL) { c.logger = l }
}

// New creates a REPL over turn.
func New(turn TurnFunc, opts ...Option) *REPL {
	c := &REPL{
		turn:      turn,
		in:        os.Stdin,
		out:       os.Stdout,
		fallback:  DefaultFallbackPrompt,
		sentinels: DefaultSentinels,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = log.OrDefault(c.logger)

	r := lipgloss.NewRenderer(c.out)
	c.user = r.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	c.assistant = r.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	c.notice = r.NewStyle().Faint(true)
	return c
}

// IsSentinel reports whether line asks to leave the loop.
func (c *REPL) IsSentinel(line string) bool {
	line = strings.ToLower(strings.TrimSpace(line))
	return slices.ContainsFunc(c.sentinels, func(s string) bool {
		return strings.ToLower(s) == line
	})
}

func (c *REPL) emit(reply string) {
	fmt.Fprintf(c.out, "%s %s\n", c.assistant.Render("Assistant:"), reply)
}

func (c *REPL) goodbye() {
	fmt.Fprintln(c.out, c.notice.Render("Goodbye!"))
}

// Run loops until a sentinel, end of input, a cancelled context or a failed
// turn. After a failed turn the fallback prompt is run once; the returned
// error is the turn's failure, joined with the fallback's if that failed too.
func (c *REPL) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(c.out, c.user.Render("User:")+" ")
		if !scanner.Scan() {
			fmt.Fprintln(c.out)
			c.goodbye()
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case c.IsSentinel(line):
			c.goodbye()
			return nil
		}

		err := c.turn(ctx, line, c.emit)
		if err == nil {
			continue
		}
		c.logger.Error("turn failed: %v", err)
		if c.fallback == "" {
			return err
		}

		fmt.Fprintf(c.out, "%s %s\n", c.user.Render("User:"), c.fallback)
		if ferr := c.turn(ctx, c.fallback, c.emit); ferr != nil {
			c.logger.Error("fallback turn failed: %v", ferr)
			return errors.Join(err, ferr)
		}
		return err
	}
}
