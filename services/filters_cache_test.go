package services

import (
	"context"
	"testing"

	"stayrooted/dto"
	"stayrooted/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeExperienceFilters(t *testing.T) {
	old := dto.ExperienceFilters{City: "Delhi", Category: "Food Tours", PriceMax: dto.IntPtr(2000)}
	merged := MergeExperienceFilters(old, dto.ExperienceFilters{Search: "walk"})

	assert.Equal(t, "walk", merged.Search)
	assert.Equal(t, "Delhi", merged.City)
	assert.Equal(t, "Food Tours", merged.Category)
	assert.Equal(t, 2000, *merged.PriceMax)
	assert.Nil(t, merged.PriceMin)
}

func TestMergeDropsStalePriceBound(t *testing.T) {
	old := dto.StayFilters{PriceMin: dto.IntPtr(1000), PriceMax: dto.IntPtr(3000)}

	merged := MergeStayFilters(old, dto.StayFilters{PriceMin: dto.IntPtr(4000)})
	assert.Equal(t, 4000, *merged.PriceMin)
	assert.Nil(t, merged.PriceMax)

	merged = MergeStayFilters(old, dto.StayFilters{PriceMax: dto.IntPtr(500)})
	assert.Equal(t, 500, *merged.PriceMax)
	assert.Nil(t, merged.PriceMin)
}

func TestRememberFilters(t *testing.T) {
	ctx := context.Background()
	fc := NewFiltersCache(store.NewMemoryCache())

	_, err := fc.RememberExperienceFilters(ctx, "sess-1", dto.ExperienceFilters{City: "Mumbai"}, false)
	require.NoError(t, err)

	merged, err := fc.RememberExperienceFilters(ctx, "sess-1", dto.ExperienceFilters{Category: "Hidden Gems"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", merged.City)
	assert.Equal(t, "Hidden Gems", merged.Category)

	_, err = fc.RememberStayFilters(ctx, "sess-1", dto.StayFilters{Guests: dto.IntPtr(4)}, false)
	require.NoError(t, err)

	last, err := fc.GetLastFilters(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, last.Experiences)
	require.NotNil(t, last.Stays)
	assert.Equal(t, "Hidden Gems", last.Experiences.Category)
	assert.Equal(t, 4, *last.Stays.Guests)

	require.NoError(t, fc.ClearLastFilters(ctx, "sess-1"))
	last, err = fc.GetLastFilters(ctx, "sess-1")
	require.NoError(t, err)
	assert.Nil(t, last.Experiences)
}

func TestRememberWithoutSession(t *testing.T) {
	cache := store.NewMemoryCache()
	fc := NewFiltersCache(cache)
	ctx := context.Background()

	got, err := fc.RememberExperienceFilters(ctx, "", dto.ExperienceFilters{City: "Goa"}, true)
	require.NoError(t, err)
	assert.Equal(t, "Goa", got.City)

	_, err = fc.RememberStayFilters(ctx, "", dto.StayFilters{State: "Kerala"}, false)
	require.NoError(t, err)
	require.NoError(t, fc.ClearLastFilters(ctx, ""))
	assert.Zero(t, cache.Len())
}
