package claims

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeContacts struct {
	contacts map[uuid.UUID]*Contact
}

func (f *fakeContacts) Contact(userID uuid.UUID) (*Contact, error) {
	if c, ok := f.contacts[userID]; ok {
		return c, nil
	}
	return &Contact{}, nil
}

type gateFixture struct {
	gate    *DisclosureGate
	store   *MemoryStore
	claim   *Claim
	finder  uuid.UUID
	claimer uuid.UUID
}

func newGateFixture(t *testing.T, status Status) *gateFixture {
	t.Helper()
	store := NewMemoryStore()
	finder, claimer := uuid.New(), uuid.New()

	claim := &Claim{
		LostDiscID: uuid.New(),
		ClaimerID:  claimer,
		FinderID:   finder,
		Status:     StatusPending,
	}
	if err := store.Insert(claim); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if status != StatusPending {
		if _, err := store.UpdateStatus(claim.ID, StatusPending, status); err != nil {
			t.Fatalf("setup transition failed: %v", err)
		}
	}

	contacts := &fakeContacts{contacts: map[uuid.UUID]*Contact{
		finder: {Name: "Finn Finder", Email: "finn@example.com", Phone: "555-0100", Location: "Austin, TX"},
		// The claimer's profile only has an email; other fields are absent.
		claimer: {Email: "casey@example.com"},
	}}

	return &gateFixture{
		gate:    NewDisclosureGate(store, contacts),
		store:   store,
		claim:   claim,
		finder:  finder,
		claimer: claimer,
	}
}

// TestDisclosure_Gating exhaustively checks status x requester x target:
// contact data flows only on approved or completed claims, only to the
// opposite party.
func TestDisclosure_Gating(t *testing.T) {
	statuses := []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
	for _, status := range statuses {
		disclosable := status == StatusApproved || status == StatusCompleted

		t.Run(string(status), func(t *testing.T) {
			f := newGateFixture(t, status)
			stranger := uuid.New()

			cases := []struct {
				name      string
				requester uuid.UUID
				target    Party
				allowed   bool
			}{
				{"claimer fetches finder", f.claimer, PartyFinder, disclosable},
				{"finder fetches claimer", f.finder, PartyClaimer, disclosable},
				// A party cannot fetch their own contact info through the gate.
				{"finder fetches finder", f.finder, PartyFinder, false},
				{"claimer fetches claimer", f.claimer, PartyClaimer, false},
				{"stranger fetches finder", stranger, PartyFinder, false},
				{"stranger fetches claimer", stranger, PartyClaimer, false},
			}
			for _, tc := range cases {
				contact, err := f.gate.Contact(f.claim.ID, tc.requester, tc.target)
				if tc.allowed {
					if err != nil {
						t.Errorf("%s: got %v, want contact", tc.name, err)
					} else if contact.Email == "" {
						t.Errorf("%s: returned empty contact", tc.name)
					}
					continue
				}
				if !errors.Is(err, ErrForbidden) {
					t.Errorf("%s: got %v, want ErrForbidden", tc.name, err)
				}
			}
		})
	}
}

// TestDisclosure_NotProvidedSentinel verifies absent profile fields are
// rendered as the "Not provided" sentinel rather than empty strings.
func TestDisclosure_NotProvidedSentinel(t *testing.T) {
	f := newGateFixture(t, StatusApproved)

	contact, err := f.gate.Contact(f.claim.ID, f.finder, PartyClaimer)
	if err != nil {
		t.Fatalf("Contact failed: %v", err)
	}
	if contact.Email != "casey@example.com" {
		t.Errorf("email = %q, want the provided value", contact.Email)
	}
	for field, got := range map[string]string{
		"name":     contact.Name,
		"phone":    contact.Phone,
		"location": contact.Location,
	} {
		if got != NotProvided {
			t.Errorf("%s = %q, want %q", field, got, NotProvided)
		}
	}
}

// TestDisclosure_MissingProfile verifies a user with no profile row still
// discloses as all "Not provided" rather than failing.
func TestDisclosure_MissingProfile(t *testing.T) {
	f := newGateFixture(t, StatusApproved)

	// Point the gate at an empty contact source.
	f.gate = NewDisclosureGate(f.store, &fakeContacts{contacts: map[uuid.UUID]*Contact{}})

	contact, err := f.gate.Contact(f.claim.ID, f.claimer, PartyFinder)
	if err != nil {
		t.Fatalf("Contact failed: %v", err)
	}
	if contact.Name != NotProvided || contact.Email != NotProvided {
		t.Errorf("expected all fields %q, got %+v", NotProvided, contact)
	}
}

// TestDisclosure_UnknownClaimAndTarget covers the remaining error paths.
func TestDisclosure_UnknownClaimAndTarget(t *testing.T) {
	f := newGateFixture(t, StatusApproved)

	if _, err := f.gate.Contact(uuid.New(), f.claimer, PartyFinder); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown claim: got %v, want ErrNotFound", err)
	}
	if _, err := f.gate.Contact(f.claim.ID, f.claimer, Party("witness")); !errors.Is(err, ErrForbidden) {
		t.Errorf("unknown target: got %v, want ErrForbidden", err)
	}
}
