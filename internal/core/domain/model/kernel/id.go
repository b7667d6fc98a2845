package kernel

import (
	"strings"

	"courier/internal/pkg/errs"

	"github.com/google/uuid"
)

// MaxIDLength is the maximum number of characters an ID may contain.
// It matches the width of the identifier columns in the database schema.
const MaxIDLength = 50

// ErrIDIsNotConstructed indicates that an ID was not properly initialized through
// one of the constructor functions. This error is returned when validating a
// zero-value ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is a value object that represents the identifier of an entity or aggregate.
// Identifiers are opaque non-empty strings: they may be supplied by callers
// (for example "D1" or "P1") or generated by the system as UUIDs. ID wraps the
// raw string to guarantee that an identifier flowing through the domain has been
// validated exactly once, at the boundary.
//
// The zero value of ID is invalid and must be constructed using one of the
// provided factory functions: NewID or ParseID.
//
// ID is immutable and thread-safe, making it suitable for concurrent use.
//
// Example usage:
//
//	// Generate a new system identifier
//	id := kernel.NewID()
//
//	// Accept a caller-supplied identifier
//	id, err := kernel.ParseID("D1")
//	if err != nil {
//	    // handle error
//	}
//
//	// Use as entity identifier
//	type Package struct {
//	    ID kernel.ID
//	    // other fields...
//	}
type ID struct {
	value string
}

// NewID generates a new random identifier backed by a UUID (version 4).
// This is the primary way to create identifiers for entities when the caller
// does not supply one.
//
// Example:
//
//	packageID := kernel.NewID()
//	fmt.Println(packageID.String()) // e.g., "550e8400-e29b-41d4-a716-446655440000"
func NewID() ID {
	return ID{
		value: uuid.NewString(),
	}
}

// ParseID constructs an ID from its string representation.
// Leading and trailing whitespace is trimmed. The remaining value must be
// non-empty and no longer than MaxIDLength characters.
//
// This function is typically used when accepting identifiers from transport
// payloads or when reconstructing entities from persistence.
//
// Example:
//
//	id, err := kernel.ParseID("D1")
//	if err != nil {
//	    return fmt.Errorf("invalid driver ID: %w", err)
//	}
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}, errs.NewValueIsRequiredError("id")
	}
	if len(s) > MaxIDLength {
		return ID{}, errs.NewValueIsOutOfRangeError("id", len(s), 1, MaxIDLength)
	}
	return ID{value: s}, nil
}

// String returns the raw string representation of the ID.
// For a zero value ID, this returns the empty string.
func (i ID) String() string {
	return i.value
}

// IsEqual compares two IDs for equality.
// Returns true if both IDs represent the same value, false otherwise.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// IsZero reports whether the ID is the zero value, i.e. was never constructed.
func (i ID) IsZero() bool {
	return i.value == ""
}

// Validate checks if the ID is properly constructed.
// Returns ErrIDIsNotConstructed if the ID is a zero value.
//
// This method is useful for validating domain objects during construction
// or when receiving data from external sources.
//
// Example:
//
//	func NewDriver(id kernel.ID) (*Driver, error) {
//	    if err := id.Validate(); err != nil {
//	        return nil, fmt.Errorf("invalid driver ID: %w", err)
//	    }
//	    return &Driver{id: id}, nil
//	}
func (i ID) Validate() error {
	if i.value == "" {
		return ErrIDIsNotConstructed
	}
	return nil
}
