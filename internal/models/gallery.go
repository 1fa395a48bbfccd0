package models

type GalleryPhoto struct {
	ID          int64  `json:"id"`
	PhotoURL    string `json:"photo_url"`
	Date        string `json:"date,omitempty"`
	ServiceName string `json:"service_name,omitempty"`
}

// Pagination is copied verbatim from backend responses.
type Pagination struct {
	CurrentPage int  `json:"current_page"`
	TotalPages  int  `json:"total_pages"`
	TotalItems  int  `json:"total_items"`
	Limit       int  `json:"limit"`
	Offset      int  `json:"offset"`
	HasNext     bool `json:"has_next"`
	HasPrevious bool `json:"has_previous"`
}

type GalleryPage struct {
	Before     []GalleryPhoto `json:"before"`
	After      []GalleryPhoto `json:"after"`
	Pagination Pagination     `json:"pagination"`
}
