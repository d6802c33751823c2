package claims

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

// fakeReports serves a fixed set of lost-disc reports.
type fakeReports struct {
	reports map[uuid.UUID]*ReportInfo
}

func (f *fakeReports) Find(id uuid.UUID) (*ReportInfo, error) {
	report, ok := f.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return report, nil
}

// chanNotifier records notifications on a channel so tests can wait for the
// fire-and-forget goroutine.
type chanNotifier struct {
	sent chan Notification
	err  error
}

func (n *chanNotifier) ClaimSubmitted(notification Notification) error {
	n.sent <- notification
	return n.err
}

type fixture struct {
	service  *Service
	store    *MemoryStore
	notifier *chanNotifier
	discID   uuid.UUID
	finderID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	discID, finderID := uuid.New(), uuid.New()
	store := NewMemoryStore()
	notifier := &chanNotifier{sent: make(chan Notification, 8)}
	reports := &fakeReports{reports: map[uuid.UUID]*ReportInfo{
		discID: {ID: discID, FinderID: finderID, Brand: "Innova", Name: "Destroyer"},
	}}
	return &fixture{
		service:  NewService(store, reports, notifier),
		store:    store,
		notifier: notifier,
		discID:   discID,
		finderID: finderID,
	}
}

func (f *fixture) submit(t *testing.T, claimerID uuid.UUID) *Claim {
	t.Helper()
	claim, err := f.service.Submit(f.discID, claimerID, "that's my disc")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	return claim
}

func (f *fixture) mustStatus(t *testing.T, claimID uuid.UUID, want Status) {
	t.Helper()
	claim, err := f.store.FindByID(claimID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if claim.Status != want {
		t.Fatalf("status = %q, want %q", claim.Status, want)
	}
}

// TestSubmit_CreatesPendingClaim covers the submit path: pending status,
// denormalized finder, and the notification side channel.
func TestSubmit_CreatesPendingClaim(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()

	claim := f.submit(t, claimer)
	if claim.Status != StatusPending {
		t.Errorf("status = %q, want %q", claim.Status, StatusPending)
	}
	if claim.FinderID != f.finderID {
		t.Errorf("finder_id = %s, want %s", claim.FinderID, f.finderID)
	}
	if claim.ClaimerID != claimer {
		t.Errorf("claimer_id = %s, want %s", claim.ClaimerID, claimer)
	}

	select {
	case n := <-f.notifier.sent:
		if n.ClaimID != claim.ID {
			t.Errorf("notification claim_id = %s, want %s", n.ClaimID, claim.ID)
		}
		if n.DiscName != "Innova Destroyer" {
			t.Errorf("notification disc name = %q, want %q", n.DiscName, "Innova Destroyer")
		}
	case <-time.After(2 * time.Second):
		t.Error("expected a claim-submitted notification")
	}
}

// TestSubmit_UnknownDisc verifies a claim against a nonexistent report.
func TestSubmit_UnknownDisc(t *testing.T) {
	f := newFixture(t)
	if _, err := f.service.Submit(uuid.New(), uuid.New(), ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Submit returned %v, want ErrNotFound", err)
	}
}

// TestSubmit_SelfClaim verifies a finder cannot claim their own report.
func TestSubmit_SelfClaim(t *testing.T) {
	f := newFixture(t)
	if _, err := f.service.Submit(f.discID, f.finderID, ""); !errors.Is(err, ErrForbidden) {
		t.Fatalf("self-claim returned %v, want ErrForbidden", err)
	}
	if claims, _ := f.store.ListByFinder(f.finderID); len(claims) != 0 {
		t.Errorf("self-claim left %d rows behind", len(claims))
	}
}

// TestSubmit_Duplicate verifies the second submit for the same pair is a
// distinguishable, recoverable conflict and leaves exactly one row.
func TestSubmit_Duplicate(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()

	f.submit(t, claimer)
	if _, err := f.service.Submit(f.discID, claimer, "again"); !errors.Is(err, ErrDuplicateClaim) {
		t.Fatalf("second Submit returned %v, want ErrDuplicateClaim", err)
	}

	mine, err := f.store.ListByClaimer(claimer)
	if err != nil {
		t.Fatalf("ListByClaimer failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("found %d claims for the pair, want 1", len(mine))
	}
}

// TestSubmit_NotifierFailureDoesNotRollBack verifies the side channel is
// best-effort.
func TestSubmit_NotifierFailureDoesNotRollBack(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("smtp down")

	claim := f.submit(t, uuid.New())
	<-f.notifier.sent

	f.mustStatus(t, claim.ID, StatusPending)
}

// TestReview_Decisions verifies finder approval and rejection.
func TestReview_Decisions(t *testing.T) {
	for _, tc := range []struct {
		decision Decision
		want     Status
	}{
		{DecisionApprove, StatusApproved},
		{DecisionReject, StatusRejected},
	} {
		t.Run(string(tc.decision), func(t *testing.T) {
			f := newFixture(t)
			claim := f.submit(t, uuid.New())

			updated, err := f.service.Review(claim.ID, f.finderID, tc.decision)
			if err != nil {
				t.Fatalf("Review failed: %v", err)
			}
			if updated.Status != tc.want {
				t.Errorf("status = %q, want %q", updated.Status, tc.want)
			}
		})
	}
}

// TestReview_Unauthorized verifies only the finder may review; everyone
// else gets ErrForbidden and the claim stays pending.
func TestReview_Unauthorized(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()
	claim := f.submit(t, claimer)

	for name, actor := range map[string]uuid.UUID{
		"claimer":     claimer,
		"third party": uuid.New(),
	} {
		if _, err := f.service.Review(claim.ID, actor, DecisionApprove); !errors.Is(err, ErrForbidden) {
			t.Errorf("%s review returned %v, want ErrForbidden", name, err)
		}
	}
	f.mustStatus(t, claim.ID, StatusPending)
}

// TestReview_NonPending verifies reviews are only legal from pending.
func TestReview_NonPending(t *testing.T) {
	f := newFixture(t)
	claim := f.submit(t, uuid.New())

	if _, err := f.service.Review(claim.ID, f.finderID, DecisionApprove); err != nil {
		t.Fatalf("Review failed: %v", err)
	}
	if _, err := f.service.Review(claim.ID, f.finderID, DecisionReject); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second review returned %v, want ErrInvalidTransition", err)
	}
	f.mustStatus(t, claim.ID, StatusApproved)
}

// TestReview_BadDecision verifies unknown decisions are refused.
func TestReview_BadDecision(t *testing.T) {
	f := newFixture(t)
	claim := f.submit(t, uuid.New())
	if _, err := f.service.Review(claim.ID, f.finderID, Decision("escalate")); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("Review returned %v, want ErrInvalidTransition", err)
	}
}

// TestComplete_TransitionClosure verifies Complete succeeds only from
// approved, for either party, and leaves other states untouched.
func TestComplete_TransitionClosure(t *testing.T) {
	for _, tc := range []struct {
		name    string
		status  Status
		wantErr error
	}{
		{"from pending", StatusPending, ErrInvalidTransition},
		{"from approved", StatusApproved, nil},
		{"from rejected", StatusRejected, ErrInvalidTransition},
		{"from completed", StatusCompleted, ErrInvalidTransition},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			claimer := uuid.New()
			claim := f.submit(t, claimer)
			if tc.status != StatusPending {
				if _, err := f.store.UpdateStatus(claim.ID, StatusPending, tc.status); err != nil {
					t.Fatalf("setup transition failed: %v", err)
				}
			}

			updated, err := f.service.Complete(claim.ID, claimer)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("Complete returned %v, want %v", err, tc.wantErr)
				}
				f.mustStatus(t, claim.ID, tc.status)
				return
			}
			if err != nil {
				t.Fatalf("Complete failed: %v", err)
			}
			if updated.Status != StatusCompleted {
				t.Errorf("status = %q, want %q", updated.Status, StatusCompleted)
			}
		})
	}
}

// TestComplete_EitherPartyButNoStranger verifies the actor check.
func TestComplete_EitherPartyButNoStranger(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()
	claim := f.submit(t, claimer)
	if _, err := f.store.UpdateStatus(claim.ID, StatusPending, StatusApproved); err != nil {
		t.Fatalf("setup transition failed: %v", err)
	}

	if _, err := f.service.Complete(claim.ID, uuid.New()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger Complete returned %v, want ErrForbidden", err)
	}
	f.mustStatus(t, claim.ID, StatusApproved)

	// The finder can complete too, not just the claimer.
	if _, err := f.service.Complete(claim.ID, f.finderID); err != nil {
		t.Fatalf("finder Complete failed: %v", err)
	}
}

// TestDelete_Universality verifies delete is legal from every status for
// either party, and forbidden for anyone else.
func TestDelete_Universality(t *testing.T) {
	statuses := []Status{StatusPending, StatusApproved, StatusRejected, StatusCompleted}
	for _, status := range statuses {
		for _, actor := range []string{"claimer", "finder"} {
			t.Run(string(status)+"/"+actor, func(t *testing.T) {
				f := newFixture(t)
				claimer := uuid.New()
				claim := f.submit(t, claimer)
				if status != StatusPending {
					if _, err := f.store.UpdateStatus(claim.ID, StatusPending, status); err != nil {
						t.Fatalf("setup transition failed: %v", err)
					}
				}

				actorID := claimer
				if actor == "finder" {
					actorID = f.finderID
				}
				if err := f.service.Delete(claim.ID, actorID); err != nil {
					t.Fatalf("Delete failed: %v", err)
				}
				if _, err := f.store.FindByID(claim.ID); !errors.Is(err, ErrNotFound) {
					t.Errorf("claim still present after delete")
				}
			})
		}
	}

	t.Run("stranger", func(t *testing.T) {
		f := newFixture(t)
		claim := f.submit(t, uuid.New())
		if err := f.service.Delete(claim.ID, uuid.New()); !errors.Is(err, ErrForbidden) {
			t.Fatalf("stranger Delete returned %v, want ErrForbidden", err)
		}
		f.mustStatus(t, claim.ID, StatusPending)
	})
}

// TestSubmit_ConcurrentDoubleSubmit verifies the uniqueness property end to
// end through the service: racing submits yield one claim and one conflict.
func TestSubmit_ConcurrentDoubleSubmit(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()

	const n = 16
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Submit(f.discID, claimer, "race")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var successes int
	for err := range results {
		if err == nil {
			successes++
		} else if !errors.Is(err, ErrDuplicateClaim) {
			t.Errorf("unexpected error: %v", err)
		}
	}
	if successes != 1 {
		t.Errorf("successes = %d, want 1", successes)
	}
}

// TestLists verifies the two claims-page views.
func TestLists(t *testing.T) {
	f := newFixture(t)
	claimer := uuid.New()
	f.submit(t, claimer)
	f.submit(t, uuid.New())

	mine, err := f.service.ListByClaimer(claimer)
	if err != nil {
		t.Fatalf("ListByClaimer failed: %v", err)
	}
	if len(mine) != 1 {
		t.Errorf("ListByClaimer returned %d claims, want 1", len(mine))
	}

	onMine, err := f.service.ListByFinder(f.finderID)
	if err != nil {
		t.Fatalf("ListByFinder failed: %v", err)
	}
	if len(onMine) != 2 {
		t.Errorf("ListByFinder returned %d claims, want 2", len(onMine))
	}
}
