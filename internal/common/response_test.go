package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{name: "defaults pass through", page: 1, limit: 20, wantPage: 1, wantLimit: 20},
		{name: "zero limit falls back", page: 1, limit: 0, wantPage: 1, wantLimit: 20},
		{name: "negative values", page: -3, limit: -1, wantPage: 1, wantLimit: 20},
		{name: "zero page", page: 0, limit: 50, wantPage: 1, wantLimit: 50},
		{name: "limit capped", page: 2, limit: 9999, wantPage: 2, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := NormalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name           string
		page, perPage  int
		total          int64
		wantTotalPages int64
	}{
		{name: "exact pages", page: 1, perPage: 10, total: 30, wantTotalPages: 3},
		{name: "partial last page", page: 2, perPage: 10, total: 31, wantTotalPages: 4},
		{name: "empty", page: 1, perPage: 20, total: 0, wantTotalPages: 0},
		{name: "zero per page does not panic", page: 1, perPage: 0, total: 5, wantTotalPages: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.page, meta.Page)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.wantTotalPages, meta.TotalPages)
		})
	}
}
