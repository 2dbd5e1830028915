package models

// Role is a reusable character definition: a name, a description, and the
// default tag set a player starts with when the role enters play.
type Role struct {
	// ID is the unique identifier for the role
	ID string

	// Name is the role's display name
	Name string

	// Description is the general description of the role
	Description string

	// Tags is the default tag set seeded into a session for this role
	Tags []Tag
}
