package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/discvault/api/internal/claims"
	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrLostDiscNotFound = errors.New("lost disc report not found")
	ErrNotFinder        = errors.New("not the finder of this disc")
)

type LostDiscService struct {
	db *gorm.DB
}

func NewLostDiscService(db *gorm.DB) *LostDiscService {
	return &LostDiscService{db: db}
}

func (s *LostDiscService) Create(finderID uuid.UUID, req *dto.LostDiscRequest) (*models.LostDisc, error) {
	if strings.TrimSpace(req.Brand) == "" && strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("brand or disc name is required")
	}

	disc := models.LostDisc{
		ID:          uuid.New(),
		UserID:      finderID,
		Brand:       req.Brand,
		Name:        req.Name,
		Color:       req.Color,
		Location:    req.Location,
		City:        req.City,
		State:       req.State,
		Country:     req.Country,
		Description: req.Description,
		WrittenInfo: req.WrittenInfo,
		PhoneNumber: req.PhoneNumber,
	}
	if req.DateFound != "" {
		found, err := time.Parse(time.RFC3339, req.DateFound)
		if err != nil {
			return nil, errors.New("date_found must be RFC 3339")
		}
		disc.DateFound = &found
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&disc).Error; err != nil {
			return err
		}
		return createImageRefs(tx, req.ImagePaths, func(path string) interface{} {
			return &models.LostDiscImage{ID: uuid.New(), LostDiscID: disc.ID, StoragePath: path}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create lost disc report: %w", err)
	}
	return &disc, nil
}

// List is the public lost-and-found browse view.
func (s *LostDiscService) List(filter dto.LostDiscFilter) ([]models.LostDisc, int64, error) {
	query := s.db.Model(&models.LostDisc{})
	if filter.Brand != "" {
		query = query.Where("brand = ?", filter.Brand)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}

	var total int64
	query.Count(&total)

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var discs []models.LostDisc
	err := query.Order("created_at DESC").Limit(limit).Offset(filter.Offset).Find(&discs).Error
	if err != nil {
		return nil, 0, err
	}
	return discs, total, nil
}

func (s *LostDiscService) Get(discID uuid.UUID) (*models.LostDisc, []models.LostDiscImage, error) {
	var disc models.LostDisc
	if err := s.db.First(&disc, "id = ?", discID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrLostDiscNotFound
		}
		return nil, nil, err
	}

	var images []models.LostDiscImage
	if err := s.db.Where("lost_disc_id = ?", discID).Find(&images).Error; err != nil {
		return nil, nil, err
	}
	return &disc, images, nil
}

func (s *LostDiscService) Update(discID, finderID uuid.UUID, req *dto.LostDiscRequest) (*models.LostDisc, error) {
	disc, _, err := s.Get(discID)
	if err != nil {
		return nil, err
	}
	if disc.UserID != finderID {
		return nil, ErrNotFinder
	}

	disc.Brand = req.Brand
	disc.Name = req.Name
	disc.Color = req.Color
	disc.Location = req.Location
	disc.City = req.City
	disc.State = req.State
	disc.Country = req.Country
	disc.Description = req.Description
	disc.WrittenInfo = req.WrittenInfo
	disc.PhoneNumber = req.PhoneNumber
	if req.DateFound != "" {
		found, err := time.Parse(time.RFC3339, req.DateFound)
		if err != nil {
			return nil, errors.New("date_found must be RFC 3339")
		}
		disc.DateFound = &found
	}

	if err := s.db.Save(disc).Error; err != nil {
		return nil, fmt.Errorf("failed to update lost disc report: %w", err)
	}
	return disc, nil
}

// Delete removes the report along with its images and any outstanding
// claims, in one transaction, so no claim is left referencing a report that
// no longer exists.
func (s *LostDiscService) Delete(discID, finderID uuid.UUID) error {
	disc, _, err := s.Get(discID)
	if err != nil {
		return err
	}
	if disc.UserID != finderID {
		return ErrNotFinder
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lost_disc_id = ?", discID).Delete(&models.LostDiscImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("lost_disc_id = ?", discID).Delete(&claims.Claim{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.LostDisc{}, "id = ?", discID).Error
	})
}
