package shell

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// entryKind tells the view how to style a transcript line.
type entryKind int

const (
	entryOutput entryKind = iota
	entryEcho             // a submitted input line
	entryNotice           // greeting and farewell
)

// entry is one line of the transcript.
type entry struct {
	text string
	kind entryKind
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	exec       Executor
	input      textinput.Model
	help       help.Model
	keys       keyMap
	prompt     string
	farewell   string
	history    int
	transcript []entry
	done       bool
}

// NewModel creates a focused Model. The greeting, if any, opens the transcript.
func NewModel(opts Options) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.PromptStyle = promptStyle
	ti.Placeholder = "hello"
	ti.Focus()

	m := Model{
		exec:     opts.Executor,
		input:    ti,
		help:     help.New(),
		keys:     defaultKeyMap(),
		prompt:   opts.Prompt,
		farewell: opts.Farewell,
		history:  opts.History,
	}
	if opts.Greeting != "" {
		m.push(entryNotice, opts.Greeting)
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m.quit()
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	out, res := step(m.exec, line)
	if res == outcomeBlank {
		return m, nil
	}
	m.push(entryEcho, m.prompt+line)
	if res == outcomeExit {
		return m.quit()
	}
	m.push(entryOutput, strings.Split(out, "\n")...)
	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if !m.done {
		m.push(entryNotice, m.farewell)
		m.done = true
	}
	return m, tea.Quit
}

// push appends lines and trims the transcript to the history limit.
func (m *Model) push(kind entryKind, lines ...string) {
	for _, l := range lines {
		m.transcript = append(m.transcript, entry{text: l, kind: kind})
	}
	if m.history > 0 && len(m.transcript) > m.history {
		m.transcript = m.transcript[len(m.transcript)-m.history:]
	}
}

// Lines returns the transcript text in order.
func (m Model) Lines() []string {
	out := make([]string, len(m.transcript))
	for i, e := range m.transcript {
		out[i] = e.text
	}
	return out
}

// View renders the transcript, the input line and the key help.
func (m Model) View() string {
	var b strings.Builder
	for _, e := range m.transcript {
		b.WriteString(styleFor(e.kind).Render(e.text))
		b.WriteString("\n")
	}
	if m.done {
		return b.String()
	}
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}
