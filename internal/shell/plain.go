package shell

import (
	"bufio"
	"context"
	"fmt"
)

// PlainSession reads commands line by line and prints each result.
type PlainSession struct {
	opts Options
}

// Run prints the greeting, then prompts and dispatches until an exit keyword
// or end of input. Cancellation is checked between lines.
func (s *PlainSession) Run(ctx context.Context) error {
	w := s.opts.Out
	if s.opts.Greeting != "" {
		_, _ = fmt.Fprintln(w, s.opts.Greeting)
	}

	sc := bufio.NewScanner(s.opts.In)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		_, _ = fmt.Fprint(w, s.opts.Prompt)
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return fmt.Errorf("shell: reading input: %w", err)
			}
			// End of input: finish the prompt line before saying goodbye.
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, s.opts.Farewell)
			return nil
		}

		out, res := step(s.opts.Executor, sc.Text())
		switch res {
		case outcomeBlank:
			continue
		case outcomeExit:
			_, _ = fmt.Fprintln(w, s.opts.Farewell)
			return nil
		default:
			_, _ = fmt.Fprintln(w, out)
		}
	}
}
