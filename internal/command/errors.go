package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/smileynet/phonebook/internal/contact"
	"github.com/smileynet/phonebook/internal/directory"
)

// MissingArgumentError reports a command invoked with too few arguments.
// It is detected before any field validation runs.
type MissingArgumentError struct {
	Command string
	Want    []string
	Got     int
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("command %q: want %s, got %d argument(s)", e.Command, strings.Join(e.Want, " "), e.Got)
}

// Prompt is the user-facing message asking for the missing arguments.
func (e *MissingArgumentError) Prompt() string {
	switch len(e.Want) {
	case 1:
		return "Enter record name."
	case 2:
		return "Enter record name and phone number."
	default:
		return "Enter record name, old phone and new phone."
	}
}

// Fixed user-facing messages.
const (
	msgInvalidCommand = "Invalid command."
	msgUnexpected     = "Unexpected error."
)

// messages maps each domain error kind to its user-facing message.
var messages = []struct {
	err error
	msg string
}{
	{contact.ErrInvalidName, "Name must have min. 3 characters."},
	{contact.ErrInvalidPhone, "Phone must have 10 digits."},
	{contact.ErrPhoneNotFound, "No such phone."},
	{directory.ErrDuplicateName, "Contact with this name already exists."},
	{directory.ErrNotFound, "Record not found."},
}

// Message translates err into the message shown to the user.
// The second result is false when err is not a known kind.
func Message(err error) (string, bool) {
	var missing *MissingArgumentError
	if errors.As(err, &missing) {
		return missing.Prompt(), true
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg, true
		}
	}
	return msgUnexpected, false
}
