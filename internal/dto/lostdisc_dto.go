package dto

type LostDiscRequest struct {
	Brand       string   `json:"brand"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Location    string   `json:"location"`
	City        string   `json:"city"`
	State       string   `json:"state"`
	Country     string   `json:"country"`
	Description string   `json:"description"`
	WrittenInfo string   `json:"written_info"`
	PhoneNumber string   `json:"phone_number"`
	DateFound   string   `json:"date_found"` // RFC 3339; empty means unknown
	ImagePaths  []string `json:"image_paths,omitempty"`
}

type LostDiscFilter struct {
	Brand  string
	State  string
	Limit  int
	Offset int
}
