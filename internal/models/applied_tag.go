package models

import (
	"time"
)

// AppliedTag records that a role currently holds a tag: who granted it to
// whom and since when. It is owned by exactly one GameRoleState.
type AppliedTag struct {
	// ID is the unique identifier for this grant
	ID string

	// Tag is the tag definition held. Tags are immutable, so the copy taken
	// at grant time is equivalent to a reference.
	Tag Tag

	// UserID is the resolved account ID of the holder, empty if unresolved
	UserID string

	// UserEmail is the email the holder was assigned under
	UserEmail string

	// AppliedAt is when the tag was granted or last refreshed
	AppliedAt time.Time
}

// IsActive reports whether the grant is still in effect at the given time.
// Active-ness is always derived from the expiry rule, never stored.
func (a *AppliedTag) IsActive(now time.Time) bool {
	if a.Tag.ExpiresAfterMinutes <= 0 {
		return true
	}

	expiresAt := a.AppliedAt.Add(time.Duration(a.Tag.ExpiresAfterMinutes) * time.Minute)
	return now.Before(expiresAt)
}
