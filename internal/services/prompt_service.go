package services

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/discvault/api/internal/dto"
	"github.com/discvault/api/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrPromptNotFound = errors.New("prompt not found")

// PromptDiscExtraction names the prompt the AI extraction service loads.
const PromptDiscExtraction = "disc_extraction"

const defaultDiscExtractionPrompt = `You are a disc golf expert assistant. Extract structured information about a disc from the following description.
Extract ONLY the following fields if mentioned:
- brand: The manufacturer (e.g., Innova, Discraft, Dynamic Discs, etc.)
- name: The disc mold name (e.g., Destroyer, Buzzz, Judge, etc.)
- color: The color of the disc
- plastic: The plastic type (e.g., Star, Champion, ESP, Z, Lucid, etc.)
- weight: The weight in grams (just the number)
- condition: The condition of the disc (e.g., New, Used, Beat in, etc.)
- inked: Boolean indicating if the disc is inked or not
- notes: Any additional information that doesn't fit in other fields

Respond with ONLY a JSON object containing these fields. Do not include fields that aren't mentioned in the description.`

type PromptService struct {
	db *gorm.DB
}

func NewPromptService(db *gorm.DB) *PromptService {
	return &PromptService{db: db}
}

func (s *PromptService) List() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := s.db.Order("name").Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// ContentByName returns the prompt text, or the built-in default when the
// row is missing.
func (s *PromptService) ContentByName(name string) string {
	var prompt models.Prompt
	if err := s.db.Where("name = ?", name).First(&prompt).Error; err == nil && prompt.Content != "" {
		return prompt.Content
	}
	if name == PromptDiscExtraction {
		return defaultDiscExtractionPrompt
	}
	return ""
}

func (s *PromptService) Update(id uuid.UUID, req *dto.UpdatePromptRequest) (*models.Prompt, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("prompt content is required")
	}

	var prompt models.Prompt
	if err := s.db.First(&prompt, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPromptNotFound
		}
		return nil, err
	}

	prompt.Content = req.Content
	prompt.Description = req.Description
	if err := s.db.Save(&prompt).Error; err != nil {
		return nil, err
	}
	return &prompt, nil
}

// SeedDefaults inserts the built-in prompts on first boot. Existing rows
// are left alone so admin edits survive restarts.
func (s *PromptService) SeedDefaults() {
	defaults := []models.Prompt{
		{
			Name:        PromptDiscExtraction,
			Content:     defaultDiscExtractionPrompt,
			Description: "System prompt for extracting disc fields from a spoken description",
		},
	}

	for _, p := range defaults {
		var existing models.Prompt
		if err := s.db.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := s.db.Create(&p).Error; err != nil {
			slog.Error("failed to seed prompt", "name", p.Name, "error", err)
		} else {
			slog.Info("seeded default prompt", "name", p.Name)
		}
	}
}
