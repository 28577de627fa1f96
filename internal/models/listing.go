package models

// Listing sort directives. Anything else leaves the default newest-first
// ordering unchanged.
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortNewest    = "newest"
)

// ListingQuery holds the optional public-browse filters. Filters compose
// conjunctively; nil range bounds are open ends.
type ListingQuery struct {
	PropertyType string
	Status       string
	PriceMin     *float64
	PriceMax     *float64
	Sort         string
}

type PaginationMeta struct {
	Total      int64   `json:"total"`
	Page       int     `json:"page"`
	PageSize   int     `json:"page_size"`
	TotalPages int     `json:"total_pages"`
	Next       *string `json:"next,omitempty"`
	Prev       *string `json:"prev,omitempty"`
}

// ListingPage is the browse response: one page of results plus the enum
// choices the filter controls are built from.
type ListingPage struct {
	Properties    []Property       `json:"properties"`
	Meta          PaginationMeta   `json:"meta"`
	PropertyTypes []PropertyType   `json:"property_types"`
	StatusChoices []PropertyStatus `json:"status_choices"`
}

// HomeContext backs the home page: the featured subset and a few realtors,
// both in insertion order.
type HomeContext struct {
	FeaturedProperties []Property       `json:"featured_properties"`
	Realtors           []RealtorProfile `json:"realtors"`
}
