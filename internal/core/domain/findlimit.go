package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultFindLimit is every new player's starting find limit (1.00).
const DefaultFindLimit Money = 100

// FindLimitState tracks the maximum coin value a player may collect. The
// limit is monotonically non-decreasing and driven only by the player's hide
// contributions, never by what they find.
type FindLimitState struct {
	PlayerID  uuid.UUID `json:"player_id"`
	Limit     Money     `json:"limit"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewFindLimitState creates the default state for a new player.
func NewFindLimitState(playerID uuid.UUID, now time.Time) *FindLimitState {
	return &FindLimitState{PlayerID: playerID, Limit: DefaultFindLimit, UpdatedAt: now}
}

// Raise applies the single governing rule: limit = max(limit, contribution).
// Returns true if the limit actually increased.
func (s *FindLimitState) Raise(contribution Money, now time.Time) bool {
	if contribution <= s.Limit {
		return false
	}
	s.Limit = contribution
	s.UpdatedAt = now
	return true
}

// Tier is a named bracket of find-limit values.
type Tier struct {
	Name string `json:"name"`
	Min  Money  `json:"min"` // exclusive lower bound, except the first tier
	Max  Money  `json:"max"` // inclusive upper bound; 0 means unbounded
}

// tiers are contiguous and non-overlapping; the top tier is unbounded.
var tiers = []Tier{
	{Name: "Novice", Min: 0, Max: 100},
	{Name: "Scout", Min: 100, Max: 1000},
	{Name: "Seeker", Min: 1000, Max: 5000},
	{Name: "Pathfinder", Min: 5000, Max: 10000},
	{Name: "Legend", Min: 10000, Max: 0},
}

// TierFor maps a find limit to its tier. Pure lookup, no side effects.
func TierFor(limit Money) Tier {
	for _, t := range tiers {
		if t.Max != 0 && limit <= t.Max {
			return t
		}
	}
	return tiers[len(tiers)-1]
}

// TierProgress reports how far a limit has advanced through its tier as a
// fraction in [0,1]. The unbounded top tier always reports 1.
func TierProgress(limit Money) float64 {
	t := TierFor(limit)
	if t.Max == 0 {
		return 1
	}
	span := t.Max - t.Min
	if span <= 0 {
		return 1
	}
	p := float64(limit-t.Min) / float64(span)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
