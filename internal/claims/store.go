package claims

import "github.com/google/uuid"

// Store is the persistence contract for claims. All operations are atomic
// single-row operations.
//
// Two contracts matter beyond plain CRUD:
//
//   - Insert must enforce uniqueness of (lost_disc_id, claimer_id) at the
//     storage layer and surface a violation as ErrDuplicateClaim, so that
//     two concurrent submits resolve to exactly one winner.
//   - UpdateStatus is compare-and-swap: the row is updated only while its
//     status still equals from. A stale from loses with ErrInvalidTransition.
type Store interface {
	Insert(claim *Claim) error
	FindByID(id uuid.UUID) (*Claim, error)
	FindByLostDiscAndClaimer(lostDiscID, claimerID uuid.UUID) (*Claim, error)
	UpdateStatus(id uuid.UUID, from, to Status) (*Claim, error)
	Delete(id uuid.UUID) error
	ListByClaimer(claimerID uuid.UUID) ([]Claim, error)
	ListByFinder(finderID uuid.UUID) ([]Claim, error)
}

// ReportInfo is the slice of a lost-disc report the lifecycle service needs.
type ReportInfo struct {
	ID       uuid.UUID
	FinderID uuid.UUID
	Brand    string
	Name     string
}

// ReportSource resolves lost-disc reports. Returns ErrNotFound when the
// report does not exist.
type ReportSource interface {
	Find(id uuid.UUID) (*ReportInfo, error)
}

// Contact holds a user's raw disclosable contact fields. Empty strings mean
// the user never provided the field.
type Contact struct {
	Name     string
	Email    string
	Phone    string
	Location string
}

// ContactSource resolves a user's contact profile. A missing profile is not
// an error; implementations return a zero Contact.
type ContactSource interface {
	Contact(userID uuid.UUID) (*Contact, error)
}
