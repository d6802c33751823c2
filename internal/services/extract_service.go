package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/discvault/api/internal/config"
	"github.com/discvault/api/internal/dto"
)

var (
	ErrExtractionDisabled = errors.New("ai extraction is not configured")
	ErrExtractionFailed   = errors.New("ai extraction failed")
)

// ExtractService turns free-form disc descriptions into structured fields
// via an OpenAI-compatible chat completions endpoint.
type ExtractService struct {
	cfg     *config.Config
	prompts *PromptService
	client  *http.Client
}

func NewExtractService(cfg *config.Config, prompts *PromptService) *ExtractService {
	return &ExtractService{
		cfg:     cfg,
		prompts: prompts,
		client:  &http.Client{Timeout: cfg.AITimeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractDisc sends the transcript to the model together with the
// disc_extraction system prompt and parses the returned JSON.
func (s *ExtractService) ExtractDisc(ctx context.Context, transcript string) (*dto.DiscFields, error) {
	if s.cfg.OpenAIAPIKey == "" {
		return nil, ErrExtractionDisabled
	}

	system := s.prompts.ContentByName(PromptDiscExtraction)

	payload := chatRequest{
		Model: s.cfg.OpenAIModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: transcript},
		},
		Temperature: 0.1,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.OpenAIAPIURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.OpenAIAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("chat completion request failed", "error", err)
		return nil, ErrExtractionFailed
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, ErrExtractionFailed
	}

	var chat chatResponse
	if err := json.Unmarshal(data, &chat); err != nil {
		slog.Error("failed to decode chat completion", "status", resp.StatusCode, "error", err)
		return nil, ErrExtractionFailed
	}
	if resp.StatusCode != http.StatusOK {
		msg := ""
		if chat.Error != nil {
			msg = chat.Error.Message
		}
		slog.Error("chat completion returned error", "status", resp.StatusCode, "message", msg)
		return nil, ErrExtractionFailed
	}
	if len(chat.Choices) == 0 {
		return nil, ErrExtractionFailed
	}

	fields := parseDiscFields(chat.Choices[0].Message.Content)
	return &fields, nil
}

// parseDiscFields extracts a DiscFields object from model output, tolerating
// markdown code fences and surrounding prose. Unparseable output yields the
// zero value rather than an error.
func parseDiscFields(content string) dto.DiscFields {
	var fields dto.DiscFields

	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx >= 0 {
			content = content[:idx]
		}
		content = strings.TrimSpace(content)
	}

	// Models occasionally wrap the object in prose. Grab the outermost braces.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return fields
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(content[start:end+1]), &raw); err != nil {
		slog.Warn("failed to parse extracted disc fields", "error", err)
		return dto.DiscFields{}
	}

	fields.Brand = rawString(raw["brand"])
	fields.Name = rawString(raw["name"])
	fields.Color = rawString(raw["color"])
	fields.Plastic = rawString(raw["plastic"])
	fields.Weight = rawString(raw["weight"])
	fields.Condition = rawString(raw["condition"])
	fields.Notes = rawString(raw["notes"])
	if v, ok := raw["inked"].(bool); ok {
		fields.Inked = &v
	}
	return fields
}

// rawString normalizes a JSON value to a string. Weight in particular comes
// back as either "175" or 175 depending on the model.
func rawString(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return ""
	}
}
