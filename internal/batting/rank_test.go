package batting

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"battingcli/pkg/contracts/domain"
)

func rankingRecords() []domain.BattingRecord {
	return []domain.BattingRecord{
		{PlayerID: "low", Year: 2020, AtBats: 500, Hits: 100},  // .200
		{PlayerID: "high", Year: 2020, AtBats: 500, Hits: 175}, // .350
		{PlayerID: "mid", Year: 2020, AtBats: 500, Hits: 150},  // .300
	}
}

func TestTopPlayers(t *testing.T) {
	t.Run("sorts descending by metric", func(t *testing.T) {
		top := TopPlayers(rankingRecords(), BattingAverage, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "high", top[0].PlayerID)
		assert.Equal(t, "mid", top[1].PlayerID)
		assert.Equal(t, "low", top[2].PlayerID)
		assert.InDelta(t, 0.350, top[0].Value, epsilon)
	})

	t.Run("truncates to n", func(t *testing.T) {
		top := TopPlayers(rankingRecords(), BattingAverage, 2)
		require.Len(t, top, 2)
		assert.Equal(t, "high", top[0].PlayerID)
		assert.Equal(t, "mid", top[1].PlayerID)
	})

	t.Run("n larger than input returns all", func(t *testing.T) {
		top := TopPlayers(rankingRecords(), BattingAverage, 100)
		assert.Len(t, top, 3)
	})

	t.Run("n of zero returns empty", func(t *testing.T) {
		assert.Empty(t, TopPlayers(rankingRecords(), BattingAverage, 0))
	})

	t.Run("negative n returns empty", func(t *testing.T) {
		assert.Empty(t, TopPlayers(rankingRecords(), BattingAverage, -5))
	})

	t.Run("empty input returns empty", func(t *testing.T) {
		assert.Empty(t, TopPlayers(nil, BattingAverage, 10))
	})

	t.Run("ties break by ascending player id", func(t *testing.T) {
		tied := []domain.BattingRecord{
			{PlayerID: "zzz", Year: 2020, AtBats: 100, Hits: 30},
			{PlayerID: "aaa", Year: 2020, AtBats: 100, Hits: 30},
			{PlayerID: "mmm", Year: 2020, AtBats: 100, Hits: 30},
		}
		top := TopPlayers(tied, BattingAverage, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "aaa", top[0].PlayerID)
		assert.Equal(t, "mmm", top[1].PlayerID)
		assert.Equal(t, "zzz", top[2].PlayerID)
	})

	t.Run("accepts caller-supplied metric", func(t *testing.T) {
		walks := func(r domain.BattingRecord) float64 { return float64(r.Walks) }
		records := []domain.BattingRecord{
			{PlayerID: "a", Walks: 5},
			{PlayerID: "b", Walks: 90},
		}
		top := TopPlayers(records, walks, 1)
		require.Len(t, top, 1)
		assert.Equal(t, "b", top[0].PlayerID)
		assert.InDelta(t, 90.0, top[0].Value, epsilon)
	})
}

func TestQualified(t *testing.T) {
	records := []domain.BattingRecord{
		{PlayerID: "full", AtBats: 600},
		{PlayerID: "part", AtBats: 120},
		{PlayerID: "edge", AtBats: 500},
	}

	t.Run("drops records under the cutoff", func(t *testing.T) {
		qualified := Qualified(records, DefaultMinimumAtBats)
		require.Len(t, qualified, 2)
		assert.Equal(t, "full", qualified[0].PlayerID)
		assert.Equal(t, "edge", qualified[1].PlayerID)
	})

	t.Run("cutoff is inclusive", func(t *testing.T) {
		qualified := Qualified(records, 500)
		assert.Len(t, qualified, 2)
	})

	t.Run("zero cutoff keeps everything", func(t *testing.T) {
		qualified := Qualified(records, 0)
		assert.Equal(t, records, qualified)

		// The result is a copy; writing to it must not reach the input.
		qualified[0].PlayerID = "mutated"
		assert.Equal(t, "full", records[0].PlayerID)
	})
}

// End-to-end: filter a season, qualify, rank — the full analysis pipeline
// minus the IO boundaries.
func TestSeasonLeaderboardPipeline(t *testing.T) {
	records := []domain.BattingRecord{
		{PlayerID: "aaronha01", Year: 1957, AtBats: 615, Hits: 198, Walks: 57, Singles: 121, Doubles: 27, Triples: 6, HomeRuns: 44},
		{PlayerID: "mayswi01", Year: 1957, AtBats: 585, Hits: 195, Walks: 76, Singles: 112, Doubles: 26, Triples: 20, HomeRuns: 35},
		{PlayerID: "mantlmi01", Year: 1957, AtBats: 474, Hits: 173, Walks: 146, Singles: 111, Doubles: 28, Triples: 6, HomeRuns: 34},
		{PlayerID: "aaronha01", Year: 1958, AtBats: 601, Hits: 196, Walks: 59, Singles: 131, Doubles: 34, Triples: 4, HomeRuns: 30},
	}

	season := FilterByYear(records, 1957)
	require.Len(t, season, 3)

	// Mantle misses the 500 AB cutoff despite the best average.
	qualified := Qualified(season, 500)
	require.Len(t, qualified, 2)

	top := TopPlayers(qualified, BattingAverage, 10)
	require.Len(t, top, 2)
	assert.Equal(t, "mayswi01", top[0].PlayerID)
	assert.InDelta(t, 195.0/585.0, top[0].Value, epsilon)
	assert.Equal(t, "aaronha01", top[1].PlayerID)
}

func BenchmarkTopPlayers(b *testing.B) {
	records := make([]domain.BattingRecord, 0, 5000)
	for i := 0; i < 5000; i++ {
		records = append(records, domain.BattingRecord{
			PlayerID: fmt.Sprintf("player%04d", i),
			Year:     2020,
			AtBats:   int64(300 + i%400),
			Hits:     int64(80 + i%150),
			Walks:    int64(i % 100),
		})
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		TopPlayers(records, BattingAverage, 10)
	}
}
