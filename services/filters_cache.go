package services

import (
	"context"
	"time"

	"stayrooted/dto"
	"stayrooted/store"
)

const (
	lastFiltersPrefix = "last_filters:"
	lastFiltersTTL    = 30 * time.Minute
)

// FiltersCache nhớ bộ lọc gần nhất của từng phiên trình duyệt
type FiltersCache struct {
	cache store.Cache
}

func NewFiltersCache(cache store.Cache) *FiltersCache {
	return &FiltersCache{cache: cache}
}

func (f *FiltersCache) GetLastFilters(ctx context.Context, sessionID string) (*dto.LastFilters, error) {
	var filters dto.LastFilters
	if sessionID == "" {
		return &filters, nil
	}
	if _, err := f.cache.Get(ctx, lastFiltersPrefix+sessionID, &filters); err != nil {
		return nil, err
	}
	return &filters, nil
}

func (f *FiltersCache) ClearLastFilters(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return f.cache.Delete(ctx, lastFiltersPrefix+sessionID)
}

// RememberExperienceFilters lưu bộ lọc experience; merge=true thì gộp với bộ lọc trước đó
func (f *FiltersCache) RememberExperienceFilters(ctx context.Context, sessionID string, filters dto.ExperienceFilters, merge bool) (dto.ExperienceFilters, error) {
	if sessionID == "" {
		return filters, nil
	}
	last, err := f.GetLastFilters(ctx, sessionID)
	if err != nil {
		return filters, err
	}
	if merge && last.Experiences != nil {
		filters = MergeExperienceFilters(*last.Experiences, filters)
	}
	last.Experiences = &filters
	return filters, f.cache.Set(ctx, lastFiltersPrefix+sessionID, last, lastFiltersTTL)
}

// RememberStayFilters lưu bộ lọc stay; merge=true thì gộp với bộ lọc trước đó
func (f *FiltersCache) RememberStayFilters(ctx context.Context, sessionID string, filters dto.StayFilters, merge bool) (dto.StayFilters, error) {
	if sessionID == "" {
		return filters, nil
	}
	last, err := f.GetLastFilters(ctx, sessionID)
	if err != nil {
		return filters, err
	}
	if merge && last.Stays != nil {
		filters = MergeStayFilters(*last.Stays, filters)
	}
	last.Stays = &filters
	return filters, f.cache.Set(ctx, lastFiltersPrefix+sessionID, last, lastFiltersTTL)
}

// Merge yêu cầu cũ với yêu cầu mới
func MergeExperienceFilters(old, new dto.ExperienceFilters) dto.ExperienceFilters {
	new.Search = orString(new.Search, old.Search)
	new.City = orString(new.City, old.City)
	new.Category = orString(new.Category, old.Category)
	new.PriceMin, new.PriceMax = mergePriceRange(old.PriceMin, old.PriceMax, new.PriceMin, new.PriceMax)
	return new
}

func MergeStayFilters(old, new dto.StayFilters) dto.StayFilters {
	new.Search = orString(new.Search, old.Search)
	new.State = orString(new.State, old.State)
	new.PropertyType = orString(new.PropertyType, old.PropertyType)
	new.Guests = orIntPointer(new.Guests, old.Guests)
	new.PriceMin, new.PriceMax = mergePriceRange(old.PriceMin, old.PriceMax, new.PriceMin, new.PriceMax)
	return new
}

// Xử lý case người dùng nhập lại PriceMax và PriceMin
func mergePriceRange(oldMin, oldMax, newMin, newMax *int) (*int, *int) {
	var priceMin, priceMax *int
	if newMin != nil && oldMax != nil && *newMin > *oldMax {
		priceMax = newMax
	} else {
		priceMax = orIntPointer(newMax, oldMax)
	}

	if priceMax != nil && oldMin != nil && *priceMax < *oldMin {
		priceMin = newMin
	} else {
		priceMin = orIntPointer(newMin, oldMin)
	}
	return priceMin, priceMax
}

func orString(newVal, oldVal string) string {
	if newVal != "" {
		return newVal
	}
	return oldVal
}

func orIntPointer(newVal, oldVal *int) *int {
	if newVal != nil {
		return newVal
	}
	return oldVal
}
