package dto

type UpdatePromptRequest struct {
	Content     string `json:"content"`
	Description string `json:"description"`
}

type ExtractRequest struct {
	Transcript string `json:"transcript"`
}

// DiscFields is the structured result of AI extraction from a spoken disc
// description. Absent fields stay empty rather than guessed.
type DiscFields struct {
	Brand     string `json:"brand,omitempty"`
	Name      string `json:"name,omitempty"`
	Color     string `json:"color,omitempty"`
	Plastic   string `json:"plastic,omitempty"`
	Weight    string `json:"weight,omitempty"`
	Condition string `json:"condition,omitempty"`
	Inked     *bool  `json:"inked,omitempty"`
	Notes     string `json:"notes,omitempty"`
}
