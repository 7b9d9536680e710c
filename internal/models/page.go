package models

// ListingPage is one page of listings for browsing.
type ListingPage struct {
	Status Status    `json:"status"`
	Notice string    `json:"notice,omitempty"`
	Total  int       `json:"total"`
	Limit  int       `json:"limit"`
	Offset int       `json:"offset"`
	Items  []Listing `json:"items"`
}

// BrowseQuery narrows the listing table for browsing.
type BrowseQuery struct {
	MinPrice float64
	MaxPrice float64
	City     string
	Limit    int
	Offset   int
}
