// Package command maps command keywords to directory operations and renders
// one message per command.
package command

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/directory"
)

// exitKeywords end the session. The caller decides what to do with them.
var exitKeywords = map[string]bool{"close": true, "exit": true}

// IsExit reports whether cmd asks to end the session.
func IsExit(cmd string) bool { return exitKeywords[cmd] }

// Parse splits a line on whitespace and lowercases the command keyword.
// ok is false for a blank line.
func Parse(line string) (cmd string, args []string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// handler is one registered command.
type handler struct {
	want []string // required argument names, in order
	run  func(d *directory.Directory, args []string) (string, error)
}

// Dispatcher runs commands against a Directory.
type Dispatcher struct {
	dir      *directory.Directory
	log      *zap.Logger
	handlers map[string]handler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for command tracing.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// New creates a Dispatcher operating on dir.
func New(dir *directory.Directory, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		dir: dir,
		log: zap.NewNop(),
		handlers: map[string]handler{
			"add":        {want: []string{"name"}, run: addRecord},
			"add_phone":  {want: []string{"name", "phone"}, run: addPhone},
			"edit_phone": {want: []string{"name", "old_phone", "new_phone"}, run: editPhone},
			"phone":      {want: []string{"name", "phone"}, run: showPhone},
			"find":       {want: []string{"name"}, run: findRecord},
			"delete":     {want: []string{"name"}, run: deleteRecord},
			"all":        {run: showAll},
			"hello":      {run: greet},
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Commands returns the registered command keywords in sorted order.
func (d *Dispatcher) Commands() []string {
	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs cmd with args and returns the message to show.
// Failures are rendered as messages; no error escapes.
func (d *Dispatcher) Dispatch(cmd string, args []string) string {
	h, ok := d.handlers[cmd]
	if !ok {
		d.log.Debug("unknown command", zap.String("command", cmd))
		return msgInvalidCommand
	}
	if len(args) < len(h.want) {
		return d.fail(cmd, &MissingArgumentError{Command: cmd, Want: h.want, Got: len(args)})
	}

	out, err := h.run(d.dir, args)
	if err != nil {
		return d.fail(cmd, err)
	}
	d.log.Debug("command ok", zap.String("command", cmd), zap.Int("records", d.dir.Len()))
	return out
}

func (d *Dispatcher) fail(cmd string, err error) string {
	msg, known := Message(err)
	if known {
		d.log.Debug("command rejected", zap.String("command", cmd), zap.Error(err))
	} else {
		d.log.Error("command failed", zap.String("command", cmd), zap.Error(err))
	}
	return msg
}

// addRecord validates the name and optional phone before the directory is
// touched.
func addRecord(d *directory.Directory, args []string) (string, error) {
	name, err := contact.NewName(args[0])
	if err != nil {
		return "", err
	}
	r, err := contact.NewRecord(name)
	if err != nil {
		return "", err
	}
	if len(args) > 1 {
		if err := r.AddPhone(args[1]); err != nil {
			return "", err
		}
	}
	if err := d.Add(r); err != nil {
		return "", err
	}
	return "Contact added.", nil
}

func addPhone(d *directory.Directory, args []string) (string, error) {
	r, err := d.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.AddPhone(args[1]); err != nil {
		return "", err
	}
	return "Phone added.", nil
}

func editPhone(d *directory.Directory, args []string) (string, error) {
	r, err := d.Find(args[0])
	if err != nil {
		return "", err
	}
	if err := r.EditPhone(args[1], args[2]); err != nil {
		return "", err
	}
	return "Phone updated.", nil
}

func showPhone(d *directory.Directory, args []string) (string, error) {
	r, err := d.Find(args[0])
	if err != nil {
		return "", err
	}
	i, err := r.FindPhone(args[1])
	if err != nil {
		return "", err
	}
	p, _ := r.PhoneAt(i)
	return fmt.Sprintf("%s: %s.", r.Name(), p), nil
}

func findRecord(d *directory.Directory, args []string) (string, error) {
	r, err := d.Find(args[0])
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

func deleteRecord(d *directory.Directory, args []string) (string, error) {
	if err := d.Delete(args[0]); err != nil {
		return "", err
	}
	return "Record deleted.", nil
}

func showAll(d *directory.Directory, _ []string) (string, error) {
	if d.Len() == 0 {
		return "No contacts.", nil
	}
	var b strings.Builder
	b.WriteString("All contacts:")
	for r := range d.All() {
		b.WriteString("\n")
		b.WriteString(r.String())
	}
	return b.String(), nil
}

func greet(*directory.Directory, []string) (string, error) {
	return "How can I help you?", nil
}
