package dto

// ExperienceFilters là bộ lọc trang /experiences
type ExperienceFilters struct {
	Search   string `form:"search" json:"search,omitempty"`
	City     string `form:"city" json:"city,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	PriceMin *int   `form:"priceMin" json:"priceMin,omitempty"`
	PriceMax *int   `form:"priceMax" json:"priceMax,omitempty"`
}

// StayFilters là bộ lọc trang /stays
type StayFilters struct {
	Search       string `form:"search" json:"search,omitempty"`
	State        string `form:"state" json:"state,omitempty"`
	PropertyType string `form:"propertyType" json:"propertyType,omitempty"`
	PriceMin     *int   `form:"priceMin" json:"priceMin,omitempty"`
	PriceMax     *int   `form:"priceMax" json:"priceMax,omitempty"`
	Guests       *int   `form:"guests" json:"guests,omitempty"`
}

// LastFilters là bộ lọc gần nhất của một phiên trình duyệt
type LastFilters struct {
	Experiences *ExperienceFilters `json:"experiences,omitempty"`
	Stays       *StayFilters       `json:"stays,omitempty"`
}

// IntPtr tiện cho test và giá trị mặc định
func IntPtr(v int) *int {
	return &v
}
