package service

import (
	"encoding/json"
	"testing"

	"studymo_backend/internal/model"
	"studymo_backend/internal/repository"
	"studymo_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogService(t *testing.T) *CatalogService {
	t.Helper()
	return NewCatalogService(repository.NewCatalogRepository(newTestDB(t)))
}

func TestSeededCatalog(t *testing.T) {
	svc := newCatalogService(t)

	categories, err := svc.ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	keys := make(map[string]bool)
	for _, c := range categories {
		keys[c.Key] = true
		assert.NotEmpty(t, c.Name)
		assert.Greater(t, c.ItemCount, 0, "category %s should have items", c.Key)
	}
	assert.True(t, keys["programming"])
	assert.True(t, keys["english"])
}

func TestGetCategoryItems(t *testing.T) {
	svc := newCatalogService(t)

	items, err := svc.GetCategoryItems("programming")
	require.NoError(t, err)
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.ItemKey)
		assert.NotEmpty(t, item.Prompt)
		if item.Kind == model.MultipleChoice {
			assert.GreaterOrEqual(t, len(item.Options), 2)
			assert.Less(t, item.CorrectOption, len(item.Options))
		}
	}
}

func TestGetCategoryItemsUnknownCategory(t *testing.T) {
	svc := newCatalogService(t)

	_, err := svc.GetCategoryItems("nope")
	assert.ErrorIs(t, err, util.ErrCategoryNotFound)
}

func TestAnswersNotSerialized(t *testing.T) {
	svc := newCatalogService(t)

	items, err := svc.GetCategoryItems("programming")
	require.NoError(t, err)
	require.NotEmpty(t, items)

	raw, err := json.Marshal(items[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.NotContains(t, decoded, "correctOption")
	assert.NotContains(t, decoded, "acceptedAnswers")
	assert.Contains(t, decoded, "prompt")
}

func TestGetContentStats(t *testing.T) {
	svc := newCatalogService(t)

	stats, err := svc.GetContentStats()
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalCategories)
	assert.Equal(t, 26, stats.TotalItems)
	assert.Equal(t, stats.TotalItems/stats.TotalCategories, stats.AverageItemsPerCategory)
}
