package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []int
		want    int
	}{
		{name: "no reviews", ratings: nil, want: 0},
		{name: "single review", ratings: []int{4}, want: 4},
		{name: "half rounds away from zero", ratings: []int{4, 5}, want: 5},
		{name: "below half rounds down", ratings: []int{4, 5, 4}, want: 4},
		{name: "all fives", ratings: []int{5, 5, 5}, want: 5},
		{name: "mixed", ratings: []int{1, 2, 3, 4, 5}, want: 3},
		{name: "3.5 rounds to 4", ratings: []int{3, 4}, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.ratings))
		})
	}
}

// Recomputing twice with the same inputs yields the same aggregate.
func TestAverageRatingIdempotent(t *testing.T) {
	ratings := []int{4, 5, 4}
	assert.Equal(t, AverageRating(ratings), AverageRating(ratings))
}
