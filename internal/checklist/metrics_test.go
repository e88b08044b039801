package checklist

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEmpty(t *testing.T) {
	m := Compute(nil)
	assert.Equal(t, Metrics{Completed: 0, Percentage: 0, Revenue: 0, Remaining: TotalItems}, m)
}

func TestComputeAllChecked(t *testing.T) {
	m := Compute(New(nil).Items())
	assert.Zero(t, m.Completed)

	s := NewStore(nil, false)
	s.CompleteAll()
	m = s.Metrics()
	assert.Equal(t, TotalItems, m.Completed)
	assert.Equal(t, 100.0, m.Percentage)
	assert.Equal(t, TotalItems*UnitPrice, m.Revenue)
	assert.Zero(t, m.Remaining)
}

func TestPercentageIsExactTenth(t *testing.T) {
	tests := []struct {
		done int
		want float64
	}{
		{0, 0},
		{7, 0.7},
		{9, 0.9},
		{11, 1.1},
		{333, 33.3},
		{999, 99.9},
		{1000, 100},
	}
	for _, tt := range tests {
		items := make([]bool, TotalItems)
		for i := 0; i < tt.done; i++ {
			items[i] = true
		}
		assert.Equal(t, tt.want, Compute(items).Percentage, "done=%d", tt.done)
	}

	items := make([]bool, TotalItems)
	for n := 0; n <= TotalItems; n++ {
		if n > 0 {
			items[n-1] = true
		}
		require.Equal(t, float64(n)/10, Compute(items).Percentage, "done=%d", n)
	}
}

func TestComputeIgnoresEntriesPastTotal(t *testing.T) {
	items := make([]bool, TotalItems+10)
	items[TotalItems+1] = true
	assert.Zero(t, Compute(items).Completed)
}

// Random operation sequences keep every derived figure consistent with the
// raw sequence.
func TestMetricsInvariantsUnderRandomOps(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewStore(nil, false)

	for step := 0; step < 5000; step++ {
		switch r := rng.Intn(100); {
		case r == 0:
			s.Reset()
		case r == 1:
			s.CompleteAll()
		default:
			s.Toggle(rng.Intn(TotalItems))
		}

		items := s.Checklist().Items()
		want := 0
		for _, v := range items {
			if v {
				want++
			}
		}

		m := s.Metrics()
		require.Equal(t, want, m.Completed)
		require.GreaterOrEqual(t, m.Percentage, 0.0)
		require.LessOrEqual(t, m.Percentage, 100.0)
		require.Equal(t, float64(m.Completed)/10, m.Percentage)
		require.Equal(t, m.Completed*37, m.Revenue)
		require.Equal(t, TotalItems-m.Completed, m.Remaining)
	}
}

func TestMilestonesTable(t *testing.T) {
	ms := Milestones()
	require.Len(t, ms, 4)
	assert.Equal(t, Milestone{Position: 250, Label: "25%"}, ms[0])
	assert.Equal(t, Milestone{Position: 1000, Label: "100%"}, ms[3])
	assert.Equal(t, 0.5, ms[1].Fraction())

	assert.False(t, ms[0].Reached(249))
	assert.True(t, ms[0].Reached(250))

	// Callers get a copy.
	ms[0].Label = "changed"
	assert.Equal(t, "25%", Milestones()[0].Label)
}
