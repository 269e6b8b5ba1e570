package batting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battingcli/internal/errors"
	"battingcli/pkg/contracts/domain"
)

const epsilon = 1e-9

func TestBattingAverage(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.BattingRecord
		expected float64
	}{
		{
			name:     "typical season",
			record:   domain.BattingRecord{PlayerID: "ruthba01", Year: 1921, AtBats: 500, Hits: 150},
			expected: 0.300,
		},
		{
			name:     "perfect hitter",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 10, Hits: 10},
			expected: 1.0,
		},
		{
			name:     "zero at-bats returns zero",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 0, Hits: 0},
			expected: 0.0,
		},
		{
			name:     "hitless season",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 50, Hits: 0},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, BattingAverage(tt.record), epsilon)
		})
	}
}

func TestOnBasePercentage(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.BattingRecord
		expected float64
	}{
		{
			name:     "typical season",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 500, Hits: 150, Walks: 50},
			expected: 200.0 / 550.0,
		},
		{
			name:     "walks only still reaches base",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 0, Hits: 0, Walks: 10},
			expected: 1.0,
		},
		{
			name:     "zero at-bats and zero walks returns zero",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 0, Walks: 0},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, OnBasePercentage(tt.record), epsilon)
		})
	}
}

func TestSluggingPercentage(t *testing.T) {
	tests := []struct {
		name     string
		record   domain.BattingRecord
		expected float64
	}{
		{
			name: "weighted bases",
			record: domain.BattingRecord{
				PlayerID: "test", AtBats: 500, Hits: 150,
				Singles: 100, Doubles: 30, Triples: 5, HomeRuns: 15,
			},
			// (100 + 2*30 + 3*5 + 4*15) / 500 = 235/500
			expected: 0.470,
		},
		{
			name:     "all home runs",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 4, Hits: 4, HomeRuns: 4},
			expected: 4.0,
		},
		{
			name:     "zero at-bats returns zero",
			record:   domain.BattingRecord{PlayerID: "test", AtBats: 0, HomeRuns: 2},
			expected: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, SluggingPercentage(tt.record), epsilon)
		})
	}
}

// Worked example: one record, all three metrics checked against hand-computed values.
func TestMetricsWorkedExample(t *testing.T) {
	record := domain.BattingRecord{
		PlayerID: "example", Year: 2023,
		AtBats: 500, Hits: 150, Walks: 50,
		Singles: 100, Doubles: 30, Triples: 5, HomeRuns: 15,
	}

	assert.InDelta(t, 0.300, BattingAverage(record), epsilon)
	assert.InDelta(t, 0.363636363, OnBasePercentage(record), 1e-6)
	assert.InDelta(t, 0.470, SluggingPercentage(record), epsilon)
}

func TestMetricByName(t *testing.T) {
	record := domain.BattingRecord{PlayerID: "test", AtBats: 100, Hits: 30, Walks: 20, Singles: 30}

	t.Run("resolves registered metrics", func(t *testing.T) {
		for name, want := range map[string]float64{
			"avg": BattingAverage(record),
			"obp": OnBasePercentage(record),
			"slg": SluggingPercentage(record),
		} {
			fn, err := MetricByName(name)
			require.NoError(t, err, name)
			assert.InDelta(t, want, fn(record), epsilon, name)
		}
	})

	t.Run("case and whitespace insensitive", func(t *testing.T) {
		fn, err := MetricByName("  AVG ")
		require.NoError(t, err)
		assert.InDelta(t, 0.300, fn(record), epsilon)
	})

	t.Run("unknown metric is an invalid argument error", func(t *testing.T) {
		fn, err := MetricByName("woba")
		require.Error(t, err)
		assert.Nil(t, fn)
		assert.True(t, errors.IsType(err, errors.ErrTypeInvalidArgument))
		assert.Contains(t, err.Error(), "woba")
	})
}

func TestMetricNames(t *testing.T) {
	assert.Equal(t, []string{"avg", "obp", "slg"}, MetricNames())
}
