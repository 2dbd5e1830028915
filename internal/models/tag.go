package models

// Tag is an immutable condition/flag definition authored alongside a scenario.
// Tags are referenced by actions, roles, and applied-tag records; they are
// never owned by them.
type Tag struct {
	// ID is the unique identifier for the tag
	ID string

	// Value is the display label for the tag
	Value string

	// IsUnique marks the tag as single-holder; semantics are reserved for callers
	IsUnique bool

	// ExpiresAfterMinutes is how long a grant of this tag stays active.
	// Zero means the tag never expires.
	ExpiresAfterMinutes int
}
