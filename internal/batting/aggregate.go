package batting

import (
	"sort"

	"battingcli/pkg/contracts/domain"
)

// AggregateCareer sums the counting stats of one player's season records into
// a single career record tagged with domain.CareerYear. The player identifier
// is taken from the first record; callers mixing multiple players' records
// should use GroupByPlayer instead. Empty input yields a zero-valued record.
// Inputs are never mutated.
func AggregateCareer(records []domain.BattingRecord) domain.BattingRecord {
	career := domain.BattingRecord{Year: domain.CareerYear}
	if len(records) == 0 {
		return career
	}

	career.PlayerID = records[0].PlayerID
	for _, record := range records {
		career.AtBats += record.AtBats
		career.Hits += record.Hits
		career.Walks += record.Walks
		career.Singles += record.Singles
		career.Doubles += record.Doubles
		career.Triples += record.Triples
		career.HomeRuns += record.HomeRuns
	}
	return career
}

// GroupByPlayer partitions mixed-player records by player identifier and
// returns one career aggregate per player, sorted by PlayerID for
// deterministic output. Records with an empty PlayerID are skipped.
func GroupByPlayer(records []domain.BattingRecord) []domain.BattingRecord {
	grouped := make(map[string][]domain.BattingRecord)
	for _, record := range records {
		if record.PlayerID == "" {
			continue
		}
		grouped[record.PlayerID] = append(grouped[record.PlayerID], record)
	}

	careers := make([]domain.BattingRecord, 0, len(grouped))
	for _, playerRecords := range grouped {
		careers = append(careers, AggregateCareer(playerRecords))
	}

	sort.Slice(careers, func(i, j int) bool {
		return careers[i].PlayerID < careers[j].PlayerID
	})
	return careers
}
