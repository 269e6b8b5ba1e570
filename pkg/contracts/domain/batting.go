package domain

import (
	"fmt"
	"strings"
)

// CareerYear is the sentinel year used for career-aggregate records.
// Season records always carry a real four-digit year.
const CareerYear = 0

// BattingRecord represents one player's counting stats for a single season,
// or a career aggregate when Year == CareerYear. Records are constructed once
// at the input boundary and treated as immutable; aggregation produces new
// records rather than mutating inputs.
type BattingRecord struct {
	PlayerID string `json:"player_id" csv:"playerID" validate:"required"`
	Year     int    `json:"year" csv:"yearID" validate:"min=0"`
	AtBats   int64  `json:"at_bats" csv:"AB" validate:"min=0"`
	Hits     int64  `json:"hits" csv:"H" validate:"min=0"`
	Walks    int64  `json:"walks" csv:"BB" validate:"min=0"`
	Singles  int64  `json:"singles" csv:"1B" validate:"min=0"`
	Doubles  int64  `json:"doubles" csv:"2B" validate:"min=0"`
	Triples  int64  `json:"triples" csv:"3B" validate:"min=0"`
	HomeRuns int64  `json:"home_runs" csv:"HR" validate:"min=0"`
}

// IsValid checks that the record has a player identifier and that every
// counting stat is non-negative. Hit composition (singles+doubles+triples+HR
// vs. total hits) is deliberately not part of this check; see
// CheckHitComposition.
func (r BattingRecord) IsValid() bool {
	return strings.TrimSpace(r.PlayerID) != "" &&
		r.Year >= 0 &&
		r.AtBats >= 0 && r.Hits >= 0 && r.Walks >= 0 &&
		r.Singles >= 0 && r.Doubles >= 0 && r.Triples >= 0 && r.HomeRuns >= 0
}

// IsCareer reports whether the record is a career aggregate.
func (r BattingRecord) IsCareer() bool {
	return r.Year == CareerYear
}

// TotalBases returns the weighted base count used by slugging percentage:
// singles count once, doubles twice, triples three times, home runs four.
func (r BattingRecord) TotalBases() int64 {
	return r.Singles + 2*r.Doubles + 3*r.Triples + 4*r.HomeRuns
}

// ExtraBaseHits returns the number of hits that went for more than one base.
func (r BattingRecord) ExtraBaseHits() int64 {
	return r.Doubles + r.Triples + r.HomeRuns
}

// CheckHitComposition verifies that the hit subtypes do not exceed total hits.
// Source data frequently violates this, so it is surfaced as a separate check
// rather than folded into IsValid; the parser decides whether it is fatal.
func (r BattingRecord) CheckHitComposition() error {
	subtypes := r.Singles + r.Doubles + r.Triples + r.HomeRuns
	if subtypes > r.Hits {
		return fmt.Errorf("hit subtypes sum to %d but record has only %d hits", subtypes, r.Hits)
	}
	return nil
}

// PlayerName represents one row of the master player file, mapping a player
// identifier to the name displayed in reports.
type PlayerName struct {
	PlayerID  string `json:"player_id" csv:"playerID" validate:"required"`
	FirstName string `json:"first_name" csv:"nameFirst"`
	LastName  string `json:"last_name" csv:"nameLast"`
}

// FullName returns the display name, tolerating a missing first or last name.
func (p PlayerName) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(p.FirstName) + " " + strings.TrimSpace(p.LastName))
}
