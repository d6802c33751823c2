package services

import (
	"errors"
	"fmt"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// Get returns the user's own profile.
func (s *ProfileService) Get(userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Update upserts the user's own profile. The email stays pinned to the
// account email; only the user mutates their own row.
func (s *ProfileService) Update(userID uuid.UUID, email string, req *dto.ProfileRequest) (*models.Profile, error) {
	profile, err := s.Get(userID)
	if errors.Is(err, ErrProfileNotFound) {
		profile = &models.Profile{ID: uuid.New(), UserID: userID, Email: email}
	} else if err != nil {
		return nil, err
	}

	profile.Name = req.Name
	profile.PhoneNumber = req.PhoneNumber
	profile.Location = req.Location
	profile.PDGANumber = req.PDGANumber
	profile.ShowInDirectory = req.ShowInDirectory

	if err := s.db.Save(profile).Error; err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}
	return profile, nil
}

// Directory lists profiles that opted into the player directory.
func (s *ProfileService) Directory() ([]models.Profile, error) {
	var profiles []models.Profile
	err := s.db.Where("show_in_directory = true").Order("name").Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
