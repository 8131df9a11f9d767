package dto

import "stayrooted/models"

type HomeResponse struct {
	FeaturedExperiences []models.Experience `json:"featured_experiences"`
	FeaturedStays       []models.Stay       `json:"featured_stays"`
	Cities              []string            `json:"cities"`
	Categories          []string            `json:"categories"`
}

type OptionsResponse struct {
	Cities        []string `json:"cities"`
	Categories    []string `json:"categories"`
	States        []string `json:"states"`
	PropertyTypes []string `json:"property_types"`
}

type SuggestResponse struct {
	Query      string  `json:"query"`
	City       string  `json:"city,omitempty"`
	State      string  `json:"state,omitempty"`
	Similarity float64 `json:"similarity"`
}

type MapMarker struct {
	ID           string             `json:"id"`
	Title        string             `json:"title"`
	Coordinates  models.Coordinates `json:"coordinates"`
	City         string             `json:"city"`
	Price        int                `json:"price"`
	Rating       float64            `json:"rating"`
	Duration     int                `json:"duration"`
	MaxGroupSize int                `json:"max_group_size"`
}

// MapBounds là khung [southWest, northEast] bao tất cả marker
type MapBounds struct {
	SouthWest [2]float64 `json:"south_west"`
	NorthEast [2]float64 `json:"north_east"`
}

type MapView struct {
	Markers []MapMarker `json:"markers"`
	Bounds  MapBounds   `json:"bounds"`
}
