package claims

import (
	"errors"
	"fmt"

	"github.com/discvault/api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the Postgres-backed Store. The uniqueness invariant lives in
// the composite unique index on (lost_disc_id, claimer_id) declared on Claim,
// not in application code, so concurrent submits cannot race past it.
// Requires the connection to be opened with gorm.Config.TranslateError so
// constraint violations surface as gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Insert(claim *Claim) error {
	if claim.ID == uuid.Nil {
		claim.ID = uuid.New()
	}
	if err := s.db.Create(claim).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateClaim
		}
		return fmt.Errorf("insert claim: %w", err)
	}
	return nil
}

func (s *GormStore) FindByID(id uuid.UUID) (*Claim, error) {
	var claim Claim
	if err := s.db.First(&claim, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find claim: %w", err)
	}
	return &claim, nil
}

func (s *GormStore) FindByLostDiscAndClaimer(lostDiscID, claimerID uuid.UUID) (*Claim, error) {
	var claim Claim
	err := s.db.Where("lost_disc_id = ? AND claimer_id = ?", lostDiscID, claimerID).First(&claim).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find claim by disc and claimer: %w", err)
	}
	return &claim, nil
}

// UpdateStatus performs a compare-and-swap: the UPDATE is filtered on the
// expected prior status, so of two racing transitions only one can win.
func (s *GormStore) UpdateStatus(id uuid.UUID, from, to Status) (*Claim, error) {
	result := s.db.Model(&Claim{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if result.Error != nil {
		return nil, fmt.Errorf("update claim status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or someone else transitioned it first.
		if _, err := s.FindByID(id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}
	return s.FindByID(id)
}

func (s *GormStore) Delete(id uuid.UUID) error {
	result := s.db.Delete(&Claim{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("delete claim: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) ListByClaimer(claimerID uuid.UUID) ([]Claim, error) {
	var out []Claim
	err := s.db.Where("claimer_id = ?", claimerID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list claims by claimer: %w", err)
	}
	return out, nil
}

func (s *GormStore) ListByFinder(finderID uuid.UUID) ([]Claim, error) {
	var out []Claim
	err := s.db.Where("finder_id = ?", finderID).Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list claims by finder: %w", err)
	}
	return out, nil
}

// GormReports resolves lost-disc reports for the lifecycle service.
type GormReports struct {
	db *gorm.DB
}

func NewGormReports(db *gorm.DB) *GormReports {
	return &GormReports{db: db}
}

func (r *GormReports) Find(id uuid.UUID) (*ReportInfo, error) {
	var disc models.LostDisc
	if err := r.db.First(&disc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find lost disc: %w", err)
	}
	return &ReportInfo{
		ID:       disc.ID,
		FinderID: disc.UserID,
		Brand:    disc.Brand,
		Name:     disc.Name,
	}, nil
}

// GormContacts resolves contact profiles for the disclosure gate.
type GormContacts struct {
	db *gorm.DB
}

func NewGormContacts(db *gorm.DB) *GormContacts {
	return &GormContacts{db: db}
}

func (c *GormContacts) Contact(userID uuid.UUID) (*Contact, error) {
	var profile models.Profile
	if err := c.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &Contact{}, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return &Contact{
		Name:     profile.Name,
		Email:    profile.Email,
		Phone:    profile.PhoneNumber,
		Location: profile.Location,
	}, nil
}
