package claims

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
)

// Decision is a finder's verdict on a pending claim.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Notification describes a submitted claim for the email side channel.
type Notification struct {
	ClaimID   uuid.UUID
	ClaimerID uuid.UUID
	FinderID  uuid.UUID
	DiscName  string
	Message   string
}

// Notifier delivers best-effort claim notifications. Failures must not
// affect the claim itself.
type Notifier interface {
	ClaimSubmitted(n Notification) error
}

// Service enforces the claim state machine and its authorization rules.
// Every mutation re-checks the actor server-side; transitions go through the
// store's compare-and-swap so concurrent updates cannot both win.
type Service struct {
	store    Store
	reports  ReportSource
	notifier Notifier
}

// NewService wires the lifecycle service. notifier may be nil.
func NewService(store Store, reports ReportSource, notifier Notifier) *Service {
	return &Service{store: store, reports: reports, notifier: notifier}
}

// Submit creates a pending claim by claimerID against the lost-disc report.
// The report's finder is copied onto the claim. A finder cannot claim their
// own report, and a user can hold at most one claim per report.
func (s *Service) Submit(lostDiscID, claimerID uuid.UUID, message string) (*Claim, error) {
	report, err := s.reports.Find(lostDiscID)
	if err != nil {
		return nil, err
	}
	if report.FinderID == claimerID {
		return nil, ErrForbidden
	}

	claim := &Claim{
		ID:         uuid.New(),
		LostDiscID: lostDiscID,
		ClaimerID:  claimerID,
		FinderID:   report.FinderID,
		Status:     StatusPending,
		Message:    message,
	}
	if err := s.store.Insert(claim); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		n := Notification{
			ClaimID:   claim.ID,
			ClaimerID: claim.ClaimerID,
			FinderID:  claim.FinderID,
			DiscName:  report.Brand + " " + report.Name,
			Message:   message,
		}
		// Fire and forget: the claim stands even if the email never lands.
		go func() {
			if err := s.notifier.ClaimSubmitted(n); err != nil {
				slog.Warn("claim notification failed", "claim_id", n.ClaimID, "error", err)
			}
		}()
	}

	return claim, nil
}

// Review transitions a pending claim to approved or rejected. Only the
// finder may review.
func (s *Service) Review(claimID, reviewerID uuid.UUID, decision Decision) (*Claim, error) {
	var target Status
	switch decision {
	case DecisionApprove:
		target = StatusApproved
	case DecisionReject:
		target = StatusRejected
	default:
		return nil, ErrInvalidTransition
	}

	claim, err := s.store.FindByID(claimID)
	if err != nil {
		return nil, err
	}
	if reviewerID != claim.FinderID {
		return nil, ErrForbidden
	}

	updated, err := s.store.UpdateStatus(claimID, StatusPending, target)
	if errors.Is(err, ErrInvalidTransition) {
		slog.Info("claim review lost to concurrent transition",
			"claim_id", claimID, "decision", string(decision))
	}
	return updated, err
}

// Complete marks an approved claim completed. Either party may complete.
func (s *Service) Complete(claimID, actorID uuid.UUID) (*Claim, error) {
	claim, err := s.store.FindByID(claimID)
	if err != nil {
		return nil, err
	}
	if !claim.IsParty(actorID) {
		return nil, ErrForbidden
	}
	return s.store.UpdateStatus(claimID, StatusApproved, StatusCompleted)
}

// Delete removes a claim outright. Unlike the gated transitions this is
// legal from every status, for either party.
func (s *Service) Delete(claimID, actorID uuid.UUID) error {
	claim, err := s.store.FindByID(claimID)
	if err != nil {
		return err
	}
	if !claim.IsParty(actorID) {
		return ErrForbidden
	}
	return s.store.Delete(claimID)
}

// ListByClaimer returns the claims a user has made, newest first.
func (s *Service) ListByClaimer(claimerID uuid.UUID) ([]Claim, error) {
	return s.store.ListByClaimer(claimerID)
}

// ListByFinder returns the claims on a user's found discs, newest first.
func (s *Service) ListByFinder(finderID uuid.UUID) ([]Claim, error) {
	return s.store.ListByFinder(finderID)
}
