package dto

// DiscRequest carries disc fields for create and update. Image paths are
// storage references produced by the upload flow, not file contents.
type DiscRequest struct {
	Name       string   `json:"name"`
	Brand      string   `json:"brand"`
	Plastic    string   `json:"plastic"`
	Weight     int      `json:"weight"`
	Condition  string   `json:"condition"`
	Color      string   `json:"color"`
	Stamp      string   `json:"stamp"`
	Inked      bool     `json:"inked"`
	ForSale    bool     `json:"for_sale"`
	Price      *float64 `json:"price"`
	Notes      string   `json:"notes"`
	ImagePaths []string `json:"image_paths,omitempty"`
}

// ImportRequest is a batch of pre-mapped spreadsheet rows.
type ImportRequest struct {
	Discs []DiscRequest `json:"discs"`
}

type ImportResponse struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
