package claims

import "github.com/google/uuid"

// Party identifies which side of a claim a contact request targets.
type Party string

const (
	PartyFinder  Party = "finder"
	PartyClaimer Party = "claimer"
)

// NotProvided is rendered in place of contact fields the user left blank.
const NotProvided = "Not provided"

// DisclosedContact is a contact profile as shown to the opposite party.
// Absent fields carry the NotProvided sentinel, never an empty string.
type DisclosedContact struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone_number"`
	Location string `json:"location"`
}

// DisclosureGate decides whether contact details may be revealed for a
// claim. Disclosure is the privacy core of the feature: it must never be
// possible for pending or rejected claims.
type DisclosureGate struct {
	store    Store
	contacts ContactSource
}

func NewDisclosureGate(store Store, contacts ContactSource) *DisclosureGate {
	return &DisclosureGate{store: store, contacts: contacts}
}

// Contact returns the target party's contact profile, provided the claim is
// approved or completed and the requester is the opposite party. A party
// cannot fetch their own details through this path.
func (g *DisclosureGate) Contact(claimID, requesterID uuid.UUID, target Party) (*DisclosedContact, error) {
	claim, err := g.store.FindByID(claimID)
	if err != nil {
		return nil, err
	}

	if claim.Status != StatusApproved && claim.Status != StatusCompleted {
		return nil, ErrForbidden
	}

	var targetID uuid.UUID
	switch target {
	case PartyFinder:
		if requesterID != claim.ClaimerID {
			return nil, ErrForbidden
		}
		targetID = claim.FinderID
	case PartyClaimer:
		if requesterID != claim.FinderID {
			return nil, ErrForbidden
		}
		targetID = claim.ClaimerID
	default:
		return nil, ErrForbidden
	}

	contact, err := g.contacts.Contact(targetID)
	if err != nil {
		return nil, err
	}

	return &DisclosedContact{
		Name:     orNotProvided(contact.Name),
		Email:    orNotProvided(contact.Email),
		Phone:    orNotProvided(contact.Phone),
		Location: orNotProvided(contact.Location),
	}, nil
}

func orNotProvided(s string) string {
	if s == "" {
		return NotProvided
	}
	return s
}
