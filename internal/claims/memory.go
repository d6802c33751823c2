package claims

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type pairKey struct {
	lostDiscID uuid.UUID
	claimerID  uuid.UUID
}

// MemoryStore is a mutex-guarded in-memory Store. It enforces the same
// uniqueness and compare-and-swap contracts as the Postgres store, which
// makes it suitable for exercising the lifecycle service in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*Claim
	byPair map[pairKey]uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID:   make(map[uuid.UUID]*Claim),
		byPair: make(map[pairKey]uuid.UUID),
	}
}

func (s *MemoryStore) Insert(claim *Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey{claim.LostDiscID, claim.ClaimerID}
	if _, exists := s.byPair[key]; exists {
		return ErrDuplicateClaim
	}

	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	now := time.Now()
	claim.CreatedAt = now
	claim.UpdatedAt = now

	copied := *claim
	s.byID[claim.ID] = &copied
	s.byPair[key] = claim.ID
	return nil
}

func (s *MemoryStore) FindByID(id uuid.UUID) (*Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	claim, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *claim
	return &copied, nil
}

func (s *MemoryStore) FindByLostDiscAndClaimer(lostDiscID, claimerID uuid.UUID) (*Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byPair[pairKey{lostDiscID, claimerID}]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *s.byID[id]
	return &copied, nil
}

// UpdateStatus swaps the status only while it still equals from.
func (s *MemoryStore) UpdateStatus(id uuid.UUID, from, to Status) (*Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if claim.Status != from {
		return nil, ErrInvalidTransition
	}

	claim.Status = to
	claim.UpdatedAt = time.Now()
	copied := *claim
	return &copied, nil
}

func (s *MemoryStore) Delete(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claim, ok := s.byID[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.byPair, pairKey{claim.LostDiscID, claim.ClaimerID})
	delete(s.byID, id)
	return nil
}

func (s *MemoryStore) ListByClaimer(claimerID uuid.UUID) ([]Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(func(c *Claim) bool { return c.ClaimerID == claimerID }), nil
}

func (s *MemoryStore) ListByFinder(finderID uuid.UUID) ([]Claim, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.list(func(c *Claim) bool { return c.FinderID == finderID }), nil
}

// list returns matching claims newest first. Callers hold the lock.
func (s *MemoryStore) list(match func(*Claim) bool) []Claim {
	out := make([]Claim, 0)
	for _, c := range s.byID {
		if match(c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}
