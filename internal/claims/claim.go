// Package claims implements the lost-disc claim lifecycle: a claimer asserts
// ownership of a found disc, the finder approves or rejects, and contact
// details are disclosed only once a claim is approved.
package claims

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a claim.
type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted:
		return true
	}
	return false
}

var (
	// ErrDuplicateClaim is returned when a user already has a claim on the
	// same lost disc. Recoverable; callers surface it as "already claimed".
	ErrDuplicateClaim = errors.New("claim already exists for this disc")

	// ErrForbidden is returned when the actor is not a party to the claim or
	// lacks permission for the requested transition.
	ErrForbidden = errors.New("not allowed to perform this action on the claim")

	// ErrInvalidTransition is returned when the requested transition is not
	// legal from the claim's current status. May indicate a stale client or
	// a lost race between two concurrent updates.
	ErrInvalidTransition = errors.New("claim is not in a state that allows this transition")

	// ErrNotFound is returned when the claim or the referenced lost disc
	// does not exist.
	ErrNotFound = errors.New("claim not found")
)

// Claim is one user's assertion of ownership over a lost-disc report.
// FinderID is denormalized from the report at creation time so permission
// checks survive later report edits.
type Claim struct {
	ID         uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LostDiscID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_disc_claims_disc_claimer,priority:1" json:"lost_disc_id"`
	ClaimerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_disc_claims_disc_claimer,priority:2;index" json:"claimer_id"`
	FinderID   uuid.UUID `gorm:"type:uuid;not null;index" json:"finder_id"`
	Status     Status    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	Message    string    `gorm:"size:1000" json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Claim) TableName() string {
	return "disc_claims"
}

// IsParty reports whether userID is the finder or the claimer.
func (c *Claim) IsParty(userID uuid.UUID) bool {
	return userID == c.FinderID || userID == c.ClaimerID
}
