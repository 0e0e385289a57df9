package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/internal/modules/stats/domain"
)

func TestModeSmallestWinsTies(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "clear winner", values: []string{"A", "A", "B"}, want: "A"},
		{name: "tie picks smallest", values: []string{"B", "A", "A", "B"}, want: "A"},
		{name: "tie between stations", values: []string{"Wood St", "Clark St", "Clark St", "Wood St"}, want: "Clark St"},
		{name: "late majority", values: []string{"C", "B", "B"}, want: "B"},
		{name: "single", values: []string{"Z"}, want: "Z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := domain.Mode(tc.values)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	hour, ok := domain.Mode([]int{17, 8, 8, 17})
	require.True(t, ok)
	assert.Equal(t, 8, hour)

	_, ok = domain.Mode([]int(nil))
	assert.False(t, ok)
}

func TestValueCountsOrdering(t *testing.T) {
	t.Parallel()
	counts := domain.ValueCounts([]string{"Customer", "Subscriber", "Subscriber", "Dependent", "Customer", "Subscriber"})
	require.Len(t, counts, 3)
	assert.Equal(t, domain.Count[string]{Value: "Subscriber", N: 3}, counts[0])
	assert.Equal(t, domain.Count[string]{Value: "Customer", N: 2}, counts[1])
	assert.Equal(t, domain.Count[string]{Value: "Dependent", N: 1}, counts[2])

	assert.Empty(t, domain.ValueCounts([]string{}))
}

func TestMinMax(t *testing.T) {
	t.Parallel()
	lo, hi, ok := domain.MinMax([]int{1980, 1899, 2001, 1992})
	require.True(t, ok)
	assert.Equal(t, 1899, lo)
	assert.Equal(t, 2001, hi)

	_, _, ok = domain.MinMax(nil)
	assert.False(t, ok)
}
