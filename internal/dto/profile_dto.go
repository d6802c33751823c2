package dto

type ProfileRequest struct {
	Name            string `json:"name"`
	PhoneNumber     string `json:"phone_number"`
	Location        string `json:"location"`
	PDGANumber      string `json:"pdga_number"`
	ShowInDirectory bool   `json:"show_in_directory"`
}
