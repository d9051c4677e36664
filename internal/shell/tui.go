package shell

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// TUISession runs the command loop in a Bubble Tea terminal UI.
// Falls back to PlainSession if the TUI program fails to start.
type TUISession struct {
	opts Options
}

// Run starts the Bubble Tea program and blocks until the user exits.
func (s *TUISession) Run(ctx context.Context) error {
	p := tea.NewProgram(NewModel(s.opts),
		tea.WithInput(s.opts.In),
		tea.WithOutput(s.opts.Out),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		plain := &PlainSession{opts: s.opts}
		return plain.Run(ctx)
	}
	return nil
}
