// Package directory implements the in-memory contact book: records keyed by
// unique name, kept in insertion order.
package directory

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/smileynet/phonebook/internal/contact"
)

// Sentinel errors for caller-checkable conditions.
var (
	ErrDuplicateName = errors.New("directory: contact with this name already exists")
	ErrNotFound      = errors.New("directory: record not found")
)

// Directory owns a set of records keyed by name.
// It is not safe for concurrent use.
type Directory struct {
	records map[string]*contact.Record
	order   []string
}

// New creates an empty Directory.
func New() *Directory {
	return &Directory{records: make(map[string]*contact.Record)}
}

// Add inserts r. A record whose name is already present is rejected and the
// directory is left untouched.
func (d *Directory) Add(r *contact.Record) error {
	key := r.Name().String()
	if _, ok := d.records[key]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, key)
	}
	d.records[key] = r
	d.order = append(d.order, key)
	return nil
}

// Find returns the record with exactly the given name.
func (d *Directory) Find(name string) (*contact.Record, error) {
	r, ok := d.records[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return r, nil
}

// Delete removes the record with the given name.
func (d *Directory) Delete(name string) error {
	if _, ok := d.records[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(d.records, name)
	if i := slices.Index(d.order, name); i >= 0 {
		d.order = slices.Delete(d.order, i, i+1)
	}
	return nil
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.records) }

// All yields records in insertion order. The directory must not be modified
// while iterating.
func (d *Directory) All() iter.Seq[*contact.Record] {
	return func(yield func(*contact.Record) bool) {
		for _, name := range d.order {
			if !yield(d.records[name]) {
				return
			}
		}
	}
}
