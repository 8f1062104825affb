package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequest_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		in            PageRequest
		expectedPage  int
		expectedLimit int
	}{
		{"defaults applied", PageRequest{}, 1, 10},
		{"negative page", PageRequest{Page: -3, Limit: 20}, 1, 20},
		{"zero limit", PageRequest{Page: 2, Limit: 0}, 2, 10},
		{"limit capped", PageRequest{Page: 1, Limit: 500}, 1, 100},
		{"valid untouched", PageRequest{Page: 7, Limit: 25}, 7, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.expectedPage, got.Page)
			assert.Equal(t, tt.expectedLimit, got.Limit)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, PageRequest{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PageRequest{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 50, PageRequest{Page: 3, Limit: 25}.Offset())
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total    int64
		limit    int
		expected int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 10, 10},
		{100, 100, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, TotalPages(tt.total, tt.limit))
	}
}
