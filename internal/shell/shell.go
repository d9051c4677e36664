// Package shell runs the interactive command loop: it reads lines, hands
// them to an Executor and shows the results, either as plain text or in a
// terminal UI.
package shell

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smileynet/phonebook/internal/command"
)

// Executor runs one parsed command and returns the message to show.
type Executor interface {
	Dispatch(cmd string, args []string) string
}

// Shell is an interactive session.
type Shell interface {
	Run(ctx context.Context) error
}

// Options configures session creation.
type Options struct {
	In         io.Reader // Input source (default: os.Stdin).
	Out        io.Writer // Output destination (default: os.Stdout).
	ForcePlain bool      // Force line mode even if In and Out are a TTY.
	Prompt     string
	Greeting   string
	Farewell   string
	History    int // Transcript lines kept by the TUI; <= 0 keeps everything.
	Executor   Executor
}

// New returns a TUI session when both ends are terminals, or a plain line
// session otherwise. ForcePlain overrides TTY detection.
func New(opts Options) Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return &PlainSession{opts: opts}
	}
	return &TUISession{opts: opts}
}

// isTTY reports whether v is a file connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// outcome is the result of feeding one input line to an Executor.
type outcome int

const (
	outcomeBlank outcome = iota
	outcomeExit
	outcomeOutput
)

// step parses line and, unless it is blank or an exit keyword, dispatches it.
func step(exec Executor, line string) (string, outcome) {
	cmd, args, ok := command.Parse(line)
	if !ok {
		return "", outcomeBlank
	}
	if command.IsExit(cmd) {
		return "", outcomeExit
	}
	return exec.Dispatch(cmd, args), outcomeOutput
}
