package contact

import (
	"fmt"
	"slices"
	"strings"
)

// phoneSeparator joins phones in a rendered record.
const phoneSeparator = "; "

// Record is one contact: a name fixed at creation and an ordered list of
// phones. Duplicate phones are allowed; order is insertion order.
type Record struct {
	name   Name
	phones []Phone
}

// NewRecord creates a Record with no phones.
func NewRecord(name Name) (*Record, error) {
	if name.IsZero() {
		return nil, fmt.Errorf("%w: empty", ErrInvalidName)
	}
	return &Record{name: name}, nil
}

// Name returns the record's name.
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the record's phones in order.
func (r *Record) Phones() []Phone { return slices.Clone(r.phones) }

// PhoneAt returns the phone at index i.
func (r *Record) PhoneAt(i int) (Phone, bool) {
	if i < 0 || i >= len(r.phones) {
		return Phone{}, false
	}
	return r.phones[i], true
}

// AddPhone validates raw and appends it. On error the record is unchanged.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// FindPhone returns the index of the first phone equal to value.
func (r *Record) FindPhone(value string) (int, error) {
	for i, p := range r.phones {
		if p.value == value {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrPhoneNotFound, value)
}

// EditPhone replaces the first phone equal to oldValue with newRaw, keeping
// its position. The lookup happens before newRaw is validated.
func (r *Record) EditPhone(oldValue, newRaw string) error {
	i, err := r.FindPhone(oldValue)
	if err != nil {
		return err
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[i] = p
	return nil
}

// DeletePhone removes the first phone equal to value.
func (r *Record) DeletePhone(value string) error {
	i, err := r.FindPhone(value)
	if err != nil {
		return err
	}
	r.phones = slices.Delete(r.phones, i, i+1)
	return nil
}

// String renders the record as "Contact name: <name>, phones: <p1>; <p2>".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.value
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.name, strings.Join(values, phoneSeparator))
}
