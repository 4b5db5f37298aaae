package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationResponse(t *testing.T) {
	t.Run("middle page links both directions", func(t *testing.T) {
		pagination := BuildPaginationResponse(25, 2, 10, "/api/v1/suggestion-history")

		assert.Equal(t, 25, pagination.Total)
		assert.Equal(t, 2, pagination.Page)
		assert.Equal(t, 10, pagination.PageSize)
		assert.Equal(t, "/api/v1/suggestion-history?page=3&page_size=10", pagination.NextURL)
		assert.Equal(t, "/api/v1/suggestion-history?page=1&page_size=10", pagination.PrevURL)
	})

	t.Run("first page has no previous link", func(t *testing.T) {
		pagination := BuildPaginationResponse(25, 1, 10, "/api/v1/suggestion-history")

		assert.NotEmpty(t, pagination.NextURL)
		assert.Empty(t, pagination.PrevURL)
	})

	t.Run("last page has no next link", func(t *testing.T) {
		pagination := BuildPaginationResponse(25, 3, 10, "/api/v1/suggestion-history")

		assert.Empty(t, pagination.NextURL)
		assert.NotEmpty(t, pagination.PrevURL)
	})
}
