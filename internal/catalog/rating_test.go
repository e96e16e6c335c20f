package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAverage(t *testing.T) {
	cases := []struct {
		name       string
		average    float64
		usersRated int
		rating     float64
		wantAvg    float64
		wantCount  int
	}{
		{"first rating", 0, 0, 8, 8, 1},
		{"running mean", 7.5, 2, 9, 8, 3},
		{"rounds to two decimals", 7.33, 3, 8, 7.5, 4},
		{"repeating decimal", 5, 1, 6, 5.5, 2},
		{"large sample barely moves", 8.2, 999, 1, 8.19, 1000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			avg, count := NextAverage(tc.average, tc.usersRated, tc.rating)
			assert.InDelta(t, tc.wantAvg, avg, 1e-9)
			assert.Equal(t, tc.wantCount, count)
		})
	}
}

func TestNextAverage_CountAlwaysIncrements(t *testing.T) {
	for n := 0; n < 50; n++ {
		_, count := NextAverage(5, n, 7)
		assert.Equal(t, n+1, count)
	}
}
