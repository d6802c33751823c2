package claims

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func newClaim(lostDiscID, claimerID, finderID uuid.UUID) *Claim {
	return &Claim{
		LostDiscID: lostDiscID,
		ClaimerID:  claimerID,
		FinderID:   finderID,
		Status:     StatusPending,
		Message:    "I think this is mine",
	}
}

// TestMemoryStore_InsertAndFind verifies basic insert and both lookup paths.
func TestMemoryStore_InsertAndFind(t *testing.T) {
	store := NewMemoryStore()
	disc, claimer, finder := uuid.New(), uuid.New(), uuid.New()

	claim := newClaim(disc, claimer, finder)
	if err := store.Insert(claim); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if claim.ID == uuid.Nil {
		t.Fatal("expected Insert to assign an ID")
	}
	if claim.CreatedAt.IsZero() || claim.UpdatedAt.IsZero() {
		t.Error("expected Insert to set timestamps")
	}

	got, err := store.FindByID(claim.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Status != StatusPending {
		t.Errorf("status = %q, want %q", got.Status, StatusPending)
	}

	got, err = store.FindByLostDiscAndClaimer(disc, claimer)
	if err != nil {
		t.Fatalf("FindByLostDiscAndClaimer failed: %v", err)
	}
	if got.ID != claim.ID {
		t.Errorf("found claim %s, want %s", got.ID, claim.ID)
	}
}

// TestMemoryStore_InsertDuplicate verifies the (lost_disc, claimer)
// uniqueness contract.
func TestMemoryStore_InsertDuplicate(t *testing.T) {
	store := NewMemoryStore()
	disc, claimer, finder := uuid.New(), uuid.New(), uuid.New()

	if err := store.Insert(newClaim(disc, claimer, finder)); err != nil {
		t.Fatalf("first Insert failed: %v", err)
	}
	if err := store.Insert(newClaim(disc, claimer, finder)); !errors.Is(err, ErrDuplicateClaim) {
		t.Fatalf("second Insert returned %v, want ErrDuplicateClaim", err)
	}

	// Same claimer on a different disc, and a different claimer on the same
	// disc, are both fine.
	if err := store.Insert(newClaim(uuid.New(), claimer, finder)); err != nil {
		t.Errorf("insert on other disc failed: %v", err)
	}
	if err := store.Insert(newClaim(disc, uuid.New(), finder)); err != nil {
		t.Errorf("insert by other claimer failed: %v", err)
	}
}

// TestMemoryStore_ConcurrentInsert verifies that N racing submits for the
// same pair produce exactly one success.
func TestMemoryStore_ConcurrentInsert(t *testing.T) {
	store := NewMemoryStore()
	disc, claimer, finder := uuid.New(), uuid.New(), uuid.New()

	const n = 32
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- store.Insert(newClaim(disc, claimer, finder))
		}()
	}
	wg.Wait()
	close(results)

	var successes, duplicates int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrDuplicateClaim):
			duplicates++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want 1", successes)
	}
	if duplicates != n-1 {
		t.Errorf("duplicates = %d, want %d", duplicates, n-1)
	}
}

// TestMemoryStore_UpdateStatusCAS verifies compare-and-swap semantics:
// a stale expected status loses without modifying the row.
func TestMemoryStore_UpdateStatusCAS(t *testing.T) {
	store := NewMemoryStore()
	claim := newClaim(uuid.New(), uuid.New(), uuid.New())
	if err := store.Insert(claim); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	updated, err := store.UpdateStatus(claim.ID, StatusPending, StatusApproved)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != StatusApproved {
		t.Errorf("status = %q, want %q", updated.Status, StatusApproved)
	}

	// A second reviewer racing with a stale view of the claim loses.
	if _, err := store.UpdateStatus(claim.ID, StatusPending, StatusRejected); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("stale UpdateStatus returned %v, want ErrInvalidTransition", err)
	}

	got, err := store.FindByID(claim.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if got.Status != StatusApproved {
		t.Errorf("loser mutated the row: status = %q, want %q", got.Status, StatusApproved)
	}

	if _, err := store.UpdateStatus(uuid.New(), StatusPending, StatusApproved); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateStatus on missing claim returned %v, want ErrNotFound", err)
	}
}

// TestMemoryStore_Delete verifies deletion frees the uniqueness slot.
func TestMemoryStore_Delete(t *testing.T) {
	store := NewMemoryStore()
	disc, claimer, finder := uuid.New(), uuid.New(), uuid.New()
	claim := newClaim(disc, claimer, finder)
	if err := store.Insert(claim); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	if err := store.Delete(claim.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.FindByID(claim.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("FindByID after delete returned %v, want ErrNotFound", err)
	}
	if err := store.Delete(claim.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete returned %v, want ErrNotFound", err)
	}

	// The claimer can claim the same disc again after deleting.
	if err := store.Insert(newClaim(disc, claimer, finder)); err != nil {
		t.Errorf("re-insert after delete failed: %v", err)
	}
}

// TestMemoryStore_Lists verifies the per-claimer and per-finder views.
func TestMemoryStore_Lists(t *testing.T) {
	store := NewMemoryStore()
	claimer, finder := uuid.New(), uuid.New()

	for i := 0; i < 3; i++ {
		if err := store.Insert(newClaim(uuid.New(), claimer, finder)); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
	}
	if err := store.Insert(newClaim(uuid.New(), uuid.New(), uuid.New())); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	mine, err := store.ListByClaimer(claimer)
	if err != nil {
		t.Fatalf("ListByClaimer failed: %v", err)
	}
	if len(mine) != 3 {
		t.Errorf("ListByClaimer returned %d claims, want 3", len(mine))
	}

	onMine, err := store.ListByFinder(finder)
	if err != nil {
		t.Fatalf("ListByFinder failed: %v", err)
	}
	if len(onMine) != 3 {
		t.Errorf("ListByFinder returned %d claims, want 3", len(onMine))
	}

	none, err := store.ListByClaimer(uuid.New())
	if err != nil {
		t.Fatalf("ListByClaimer failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("ListByClaimer for stranger returned %d claims, want 0", len(none))
	}
}
