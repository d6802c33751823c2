package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDiscNotFound = errors.New("disc not found")
	ErrNotOwner     = errors.New("not the owner of this disc")
)

type DiscService struct {
	db *gorm.DB
}

func NewDiscService(db *gorm.DB) *DiscService {
	return &DiscService{db: db}
}

func (s *DiscService) Create(userID uuid.UUID, req *dto.DiscRequest) (*models.Disc, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.New("disc name is required")
	}

	disc := models.Disc{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		Brand:     req.Brand,
		Plastic:   req.Plastic,
		Weight:    req.Weight,
		Condition: req.Condition,
		Color:     req.Color,
		Stamp:     req.Stamp,
		Inked:     req.Inked,
		ForSale:   req.ForSale,
		Notes:     req.Notes,
	}
	if req.ForSale {
		disc.Price = req.Price
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&disc).Error; err != nil {
			return err
		}
		return createImageRefs(tx, req.ImagePaths, func(path string) interface{} {
			return &models.DiscImage{ID: uuid.New(), DiscID: disc.ID, StoragePath: path}
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create disc: %w", err)
	}
	return &disc, nil
}

// List returns the user's collection, optionally only discs marked for sale.
func (s *DiscService) List(userID uuid.UUID, forSaleOnly bool) ([]models.Disc, error) {
	query := s.db.Where("user_id = ?", userID)
	if forSaleOnly {
		query = query.Where("for_sale = true")
	}

	var discs []models.Disc
	if err := query.Order("created_at DESC").Find(&discs).Error; err != nil {
		return nil, err
	}
	return discs, nil
}

// ListForSale returns every disc marked for sale across all users.
func (s *DiscService) ListForSale(limit, offset int) ([]models.Disc, int64, error) {
	var discs []models.Disc
	var total int64

	query := s.db.Model(&models.Disc{}).Where("for_sale = true")
	query.Count(&total)

	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&discs).Error; err != nil {
		return nil, 0, err
	}
	return discs, total, nil
}

func (s *DiscService) Get(discID uuid.UUID) (*models.Disc, []models.DiscImage, error) {
	var disc models.Disc
	if err := s.db.First(&disc, "id = ?", discID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrDiscNotFound
		}
		return nil, nil, err
	}

	var images []models.DiscImage
	if err := s.db.Where("disc_id = ?", discID).Find(&images).Error; err != nil {
		return nil, nil, err
	}
	return &disc, images, nil
}

func (s *DiscService) Update(discID, userID uuid.UUID, req *dto.DiscRequest) (*models.Disc, error) {
	disc, _, err := s.Get(discID)
	if err != nil {
		return nil, err
	}
	if disc.UserID != userID {
		return nil, ErrNotOwner
	}

	disc.Name = req.Name
	disc.Brand = req.Brand
	disc.Plastic = req.Plastic
	disc.Weight = req.Weight
	disc.Condition = req.Condition
	disc.Color = req.Color
	disc.Stamp = req.Stamp
	disc.Inked = req.Inked
	disc.ForSale = req.ForSale
	if req.ForSale {
		disc.Price = req.Price
	} else {
		disc.Price = nil
	}
	disc.Notes = req.Notes

	if err := s.db.Save(disc).Error; err != nil {
		return nil, fmt.Errorf("failed to update disc: %w", err)
	}
	return disc, nil
}

func (s *DiscService) Delete(discID, userID uuid.UUID) error {
	disc, _, err := s.Get(discID)
	if err != nil {
		return err
	}
	if disc.UserID != userID {
		return ErrNotOwner
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("disc_id = ?", discID).Delete(&models.DiscImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Disc{}, "id = ?", discID).Error
	})
}

// Import bulk-inserts pre-mapped spreadsheet rows. Rows without a name are
// skipped rather than failing the batch.
func (s *DiscService) Import(userID uuid.UUID, req *dto.ImportRequest) (*dto.ImportResponse, error) {
	result := &dto.ImportResponse{}

	discs := make([]models.Disc, 0, len(req.Discs))
	for i, row := range req.Discs {
		if strings.TrimSpace(row.Name) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("row %d: missing disc name", i+1))
			continue
		}
		disc := models.Disc{
			ID:        uuid.New(),
			UserID:    userID,
			Name:      row.Name,
			Brand:     row.Brand,
			Plastic:   row.Plastic,
			Weight:    row.Weight,
			Condition: row.Condition,
			Color:     row.Color,
			Stamp:     row.Stamp,
			Inked:     row.Inked,
			ForSale:   row.ForSale,
			Notes:     row.Notes,
		}
		if row.ForSale {
			disc.Price = row.Price
		}
		discs = append(discs, disc)
	}

	if len(discs) > 0 {
		if err := s.db.CreateInBatches(discs, 100).Error; err != nil {
			return nil, fmt.Errorf("failed to import discs: %w", err)
		}
	}
	result.Imported = len(discs)
	return result, nil
}

// createImageRefs stores storage-path references for already-uploaded images.
func createImageRefs(tx *gorm.DB, paths []string, build func(string) interface{}) error {
	for _, path := range paths {
		if strings.TrimSpace(path) == "" {
			continue
		}
		if err := tx.Create(build(path)).Error; err != nil {
			return err
		}
	}
	return nil
}
