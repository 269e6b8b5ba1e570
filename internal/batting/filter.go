package batting

import (
	"sort"

	"battingcli/pkg/contracts/domain"
)

// FilterByYear returns the subset of records whose Year matches the target
// year, preserving input order. A year matching no record yields an empty
// slice, not an error.
func FilterByYear(records []domain.BattingRecord, year int) []domain.BattingRecord {
	filtered := make([]domain.BattingRecord, 0)
	for _, record := range records {
		if record.Year == year {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

// Years returns the distinct season years present in the records, in
// ascending order. Career-aggregate records are excluded.
func Years(records []domain.BattingRecord) []int {
	seen := make(map[int]struct{})
	for _, record := range records {
		if record.IsCareer() {
			continue
		}
		seen[record.Year] = struct{}{}
	}

	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}
