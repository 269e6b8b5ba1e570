package batting

import (
	"sort"

	"battingcli/pkg/contracts/domain"
)

// DefaultMinimumAtBats is the conventional qualification cutoff for official
// rate statistics.
const DefaultMinimumAtBats int64 = 500

// PlayerScore pairs a player identifier with a computed metric value.
type PlayerScore struct {
	PlayerID string  `json:"player_id"`
	Year     int     `json:"year"`
	Value    float64 `json:"value"`
}

// Qualified returns the records with at least minAtBats at-bats, preserving
// input order. A threshold of zero or less keeps every record. The result is
// always a fresh slice and never aliases the input.
func Qualified(records []domain.BattingRecord, minAtBats int64) []domain.BattingRecord {
	qualified := make([]domain.BattingRecord, 0, len(records))
	for _, record := range records {
		if minAtBats <= 0 || record.AtBats >= minAtBats {
			qualified = append(qualified, record)
		}
	}
	return qualified
}

// TopPlayers computes metric for every record, sorts descending by value, and
// returns the first n scores. Ties order by ascending PlayerID so output is
// deterministic regardless of input order. n <= 0 returns an empty slice;
// n larger than the input returns every record.
func TopPlayers(records []domain.BattingRecord, metric MetricFunc, n int) []PlayerScore {
	if n <= 0 || len(records) == 0 {
		return []PlayerScore{}
	}

	scores := make([]PlayerScore, 0, len(records))
	for _, record := range records {
		scores = append(scores, PlayerScore{
			PlayerID: record.PlayerID,
			Year:     record.Year,
			Value:    metric(record),
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].PlayerID < scores[j].PlayerID
	})

	if n > len(scores) {
		n = len(scores)
	}
	return scores[:n]
}
