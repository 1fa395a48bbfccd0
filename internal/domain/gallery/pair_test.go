package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-console/internal/models"
)

func TestZip(t *testing.T) {
	t.Run("Missing Side Becomes Placeholder", func(t *testing.T) {
		before := []models.GalleryPhoto{
			{ID: 1, PhotoURL: "https://cdn.test/a.jpg", Date: "2025-06-01", ServiceName: "Cut"},
			{ID: 2, PhotoURL: "https://cdn.test/b.jpg"},
		}
		after := []models.GalleryPhoto{
			{ID: 9, PhotoURL: "https://cdn.test/x.jpg"},
		}

		pairs := Zip(before, after)

		require.Len(t, pairs, 2)
		require.NotNil(t, pairs[0].AfterPhotoURL)
		assert.Equal(t, "https://cdn.test/x.jpg", *pairs[0].AfterPhotoURL)
		assert.Nil(t, pairs[1].AfterPhotoURL)
		assert.Equal(t, PlaceholderURL, pairs[1].AfterDisplay)
		assert.Equal(t, "https://cdn.test/b.jpg", pairs[1].BeforeDisplay)
	})

	t.Run("Longer After Side", func(t *testing.T) {
		pairs := Zip(nil, []models.GalleryPhoto{{ID: 1, PhotoURL: "x"}, {ID: 2, PhotoURL: "y"}})

		require.Len(t, pairs, 2)
		assert.Nil(t, pairs[1].BeforePhotoURL)
		assert.Equal(t, PlaceholderURL, pairs[1].BeforeDisplay)
	})

	t.Run("Metadata Prefers Before", func(t *testing.T) {
		pairs := Zip(
			[]models.GalleryPhoto{{PhotoURL: "a", ServiceName: "Color"}},
			[]models.GalleryPhoto{{PhotoURL: "x", Date: "2025-05-20", ServiceName: "Cut"}},
		)

		require.Len(t, pairs, 1)
		assert.Equal(t, "Color", pairs[0].ServiceName)
		assert.Equal(t, "2025-05-20", pairs[0].Date)
		assert.True(t, pairs[0].Dated())
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, Zip(nil, nil))
	})
}

func TestSortByDateDesc(t *testing.T) {
	pairs := Zip([]models.GalleryPhoto{
		{ID: 1, PhotoURL: "a"},
		{ID: 2, PhotoURL: "b", Date: "2025-05-01"},
		{ID: 3, PhotoURL: "c", Date: "not a date"},
		{ID: 4, PhotoURL: "d", Date: "2025-06-01T10:00:00Z"},
		{ID: 5, PhotoURL: "e"},
	}, nil)

	SortByDateDesc(pairs)

	ids := make([]int64, 0, len(pairs))
	for _, p := range pairs {
		ids = append(ids, p.BeforeID)
	}
	assert.Equal(t, []int64{4, 2, 1, 3, 5}, ids)
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0))
	assert.Equal(t, 0, Offset(1))
	assert.Equal(t, 10, Offset(3))
}
