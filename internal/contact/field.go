// Package contact defines the validated contact fields and the Record that
// groups a name with its phone numbers.
package contact

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrInvalidName   = errors.New("contact: name must have at least 3 characters")
	ErrInvalidPhone  = errors.New("contact: phone must have exactly 10 digits")
	ErrPhoneNotFound = errors.New("contact: phone not found")
)

// Field rules in validator tag syntax. String lengths count runes.
const (
	nameRule  = "min=3"
	phoneRule = "len=10,number"
)

var validate = validator.New()

// Name is a contact display name of at least three characters.
// The zero Name is not valid; use NewName.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if err := validate.Var(raw, nameRule); err != nil {
		return Name{}, fmt.Errorf("%w: %q", ErrInvalidName, raw)
	}
	return Name{value: raw}, nil
}

// String returns the name exactly as it was given.
func (n Name) String() string { return n.value }

// IsZero reports whether n was not produced by NewName.
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a phone number of exactly ten ASCII digits.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone.
func NewPhone(raw string) (Phone, error) {
	if err := validate.Var(raw, phoneRule); err != nil {
		return Phone{}, fmt.Errorf("%w: %q", ErrInvalidPhone, raw)
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }
