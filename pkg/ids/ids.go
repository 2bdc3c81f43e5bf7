// Package ids provides widget identifiers.
package ids

import "github.com/google/uuid"

// ID identifies a widget for its whole lifetime. IDs are comparable and
// usable as map keys. The zero ID is never assigned to a widget.
type ID uuid.UUID

// Nil is the zero ID.
var Nil ID

// New returns a fresh random ID.
func New() ID {
	return ID(uuid.New())
}

// String returns the short form of the ID: the first eight hex digits.
// Use Full for the complete UUID.
func (id ID) String() string {
	return id.Full()[:8]
}

// Full returns the canonical UUID text of the ID.
func (id ID) Full() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Parse parses the canonical UUID text form.
func Parse(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, err
	}
	return ID(u), nil
}
