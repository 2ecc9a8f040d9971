package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFindsTenantWithoutDiacritics(t *testing.T) {
	env := newTestEnv()
	search := NewSearchService(SearchServiceOptions{Store: env.store})
	tenant := env.seedTenant("Nguyễn Văn Hùng", "079123456789")
	env.seedTenant("Trần Thị Mai", "079987654321")

	results, err := search.Search("nguyen van hung", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "tenant", results[0].Kind)
	assert.Equal(t, tenant.ID, results[0].ID)
	assert.Equal(t, "Nguyễn Văn Hùng", results[0].Label)
}

func TestSearchFindsRoomByCode(t *testing.T) {
	env := newTestEnv()
	search := NewSearchService(SearchServiceOptions{Store: env.store})
	room := env.seedRoom("P101", 0)
	env.seedRoom("P202", 0)

	results, err := search.Search("p101", 10)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, "room", results[0].Kind)
	assert.Equal(t, room.ID, results[0].ID)
}

func TestSearchEmptyQueryAndEmptyStore(t *testing.T) {
	env := newTestEnv()
	search := NewSearchService(SearchServiceOptions{Store: env.store})

	results, err := search.Search("   ", 10)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = search.Search("bat ky", 10)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCalculateSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, calculateSimilarity("p101", "p101"))
	assert.Greater(t, calculateSimilarity("nguyen van hung", "nguyen van hun"), 0.9)
	assert.Less(t, calculateSimilarity("p101", "tran thi mai"), 0.4)
}
