package services

import (
	"context"
	"math"

	"stayrooted/constants"
	"stayrooted/data"
	"stayrooted/dto"
	"stayrooted/errors"
	"stayrooted/models"
	"stayrooted/store"
)

type CatalogService struct {
	catalog store.Catalog
}

func NewCatalogService(catalog store.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func dbError(err error) error {
	return errors.NewAppError(errors.ErrCodeDBError, "Failed to load catalog", err)
}

// ListExperiences lọc experience theo từ khóa, thành phố, danh mục và khoảng giá
func (s *CatalogService) ListExperiences(ctx context.Context, filters dto.ExperienceFilters) ([]models.Experience, error) {
	all, err := s.catalog.Experiences(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	priceMin, priceMax := priceRange(filters.PriceMin, filters.PriceMax, constants.ExperiencePriceMin, constants.ExperiencePriceMax)

	result := make([]models.Experience, 0, len(all))
	for _, exp := range all {
		if filters.Search != "" && !containsFold(exp.Title, filters.Search) && !containsFold(exp.Description, filters.Search) {
			continue
		}
		if filters.City != "" && exp.City != filters.City {
			continue
		}
		if filters.Category != "" && exp.Category != filters.Category {
			continue
		}
		if exp.Price < priceMin || exp.Price > priceMax {
			continue
		}
		result = append(result, exp)
	}
	return result, nil
}

// ListStays lọc homestay theo từ khóa, bang, loại chỗ ở, giá mỗi đêm và số khách
func (s *CatalogService) ListStays(ctx context.Context, filters dto.StayFilters) ([]models.Stay, error) {
	all, err := s.catalog.Stays(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	priceMin, priceMax := priceRange(filters.PriceMin, filters.PriceMax, constants.StayPriceMin, constants.StayPriceMax)
	guests := constants.StayDefaultGuests
	if filters.Guests != nil {
		guests = *filters.Guests
	}

	result := make([]models.Stay, 0, len(all))
	for _, stay := range all {
		if filters.Search != "" &&
			!containsFold(stay.Title, filters.Search) &&
			!containsFold(stay.Description, filters.Search) &&
			!containsFold(stay.City, filters.Search) {
			continue
		}
		if filters.State != "" && stay.State != filters.State {
			continue
		}
		if filters.PropertyType != "" && stay.PropertyType != filters.PropertyType {
			continue
		}
		if stay.PricePerNight < priceMin || stay.PricePerNight > priceMax {
			continue
		}
		if stay.MaxGuests < guests {
			continue
		}
		result = append(result, stay)
	}
	return result, nil
}

func priceRange(min, max *int, defMin, defMax int) (int, int) {
	lo, hi := defMin, defMax
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	return lo, hi
}

func (s *CatalogService) GetExperience(ctx context.Context, id string) (*models.Experience, error) {
	all, err := s.catalog.Experiences(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeExperienceNotFound, constants.MsgExperienceNotFound, errors.ErrExperienceNotFound)
}

func (s *CatalogService) GetStay(ctx context.Context, id string) (*models.Stay, error) {
	all, err := s.catalog.Stays(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeStayNotFound, constants.MsgStayNotFound, errors.ErrStayNotFound)
}

// Featured là dữ liệu trang chủ: 3 experience và 3 stay đầu tiên
func (s *CatalogService) Featured(ctx context.Context) (*dto.HomeResponse, error) {
	experiences, err := s.catalog.Experiences(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	stays, err := s.catalog.Stays(ctx)
	if err != nil {
		return nil, dbError(err)
	}

	return &dto.HomeResponse{
		FeaturedExperiences: experiences[:min(constants.FeaturedCount, len(experiences))],
		FeaturedStays:       stays[:min(constants.FeaturedCount, len(stays))],
		Cities:              data.Cities,
		Categories:          data.Categories,
	}, nil
}

func (s *CatalogService) Options() dto.OptionsResponse {
	return dto.OptionsResponse{
		Cities:        data.Cities,
		Categories:    data.Categories,
		States:        data.States,
		PropertyTypes: data.PropertyTypes,
	}
}

func (s *CatalogService) ExperiencesByHost(ctx context.Context, hostID string) ([]models.Experience, error) {
	all, err := s.catalog.Experiences(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	result := []models.Experience{}
	for _, exp := range all {
		if exp.HostID == hostID {
			result = append(result, exp)
		}
	}
	return result, nil
}

func (s *CatalogService) StaysByHost(ctx context.Context, hostID string) ([]models.Stay, error) {
	all, err := s.catalog.Stays(ctx)
	if err != nil {
		return nil, dbError(err)
	}
	result := []models.Stay{}
	for _, stay := range all {
		if stay.HostID == hostID {
			result = append(result, stay)
		}
	}
	return result, nil
}

// Suggest gợi ý thành phố hoặc bang gần nhất với một từ khóa gõ sai
func (s *CatalogService) Suggest(query string) dto.SuggestResponse {
	resp := dto.SuggestResponse{Query: query}

	city, cityScore := closestKeyword(query, data.Cities)
	state, stateScore := closestKeyword(query, data.States)

	if cityScore >= suggestThreshold {
		resp.City = city
		resp.Similarity = cityScore
	}
	if stateScore >= suggestThreshold {
		resp.State = state
		if stateScore > resp.Similarity {
			resp.Similarity = stateScore
		}
	}
	return resp
}

// MapView dựng marker và khung bao cho bản đồ experience
func (s *CatalogService) MapView(experiences []models.Experience) dto.MapView {
	view := dto.MapView{Markers: make([]dto.MapMarker, 0, len(experiences))}
	if len(experiences) == 0 {
		view.Bounds = dto.MapBounds{SouthWest: constants.DefaultMapCenter, NorthEast: constants.DefaultMapCenter}
		return view
	}

	minLat, minLng := math.Inf(1), math.Inf(1)
	maxLat, maxLng := math.Inf(-1), math.Inf(-1)
	for _, exp := range experiences {
		view.Markers = append(view.Markers, dto.MapMarker{
			ID:           exp.ID,
			Title:        exp.Title,
			Coordinates:  exp.Coordinates,
			City:         exp.City,
			Price:        exp.Price,
			Rating:       exp.Rating,
			Duration:     exp.Duration,
			MaxGroupSize: exp.MaxGroupSize,
		})
		minLat = math.Min(minLat, exp.Coordinates.Latitude)
		maxLat = math.Max(maxLat, exp.Coordinates.Latitude)
		minLng = math.Min(minLng, exp.Coordinates.Longitude)
		maxLng = math.Max(maxLng, exp.Coordinates.Longitude)
	}

	view.Bounds = dto.MapBounds{
		SouthWest: [2]float64{minLat, minLng},
		NorthEast: [2]float64{maxLat, maxLng},
	}
	return view
}
