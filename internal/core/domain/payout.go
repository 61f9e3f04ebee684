package domain

import "math"

// Streak thresholds for pool payout classification.
const (
	HotStreakLen         = 3
	ColdStreakLen        = 5
	HighValueThreshold   Money = 500 // 5.00
	LowValueThreshold    Money = 100 // 1.00
	payoutBiasExponent         = 2.0 // >1 biases draws toward the low end
)

// PayoutRange is an inclusive [Min, Max] payout interval in cents.
type PayoutRange struct {
	Min Money `json:"min"`
	Max Money `json:"max"`
}

// Contains reports whether v lies inside the range.
func (r PayoutRange) Contains(v Money) bool {
	return v >= r.Min && v <= r.Max
}

// StreakClass names the classification a payout draw was made under.
type StreakClass string

const (
	StreakNewPlayer StreakClass = "NEW_PLAYER"
	StreakHot       StreakClass = "HOT"
	StreakCold      StreakClass = "COLD"
	StreakNormal    StreakClass = "NORMAL"
)

// PayoutRule pairs a streak predicate with its payout range. Rules are
// evaluated in order; the first match wins.
type PayoutRule struct {
	Class   StreakClass
	Range   PayoutRange
	Matches func(recent []Money) bool
}

// payoutRules is the ordered rule cascade for pool coin payouts. The history
// slice is ordered most recent first.
var payoutRules = []PayoutRule{
	{
		// Too little history to classify: wide exploratory range.
		Class:   StreakNewPlayer,
		Range:   PayoutRange{Min: 10, Max: 1000},
		Matches: func(recent []Money) bool { return len(recent) < HotStreakLen },
	},
	{
		// Last 3 finds all high: compress the ceiling after a lucky run.
		Class: StreakHot,
		Range: PayoutRange{Min: 10, Max: 200},
		Matches: func(recent []Money) bool {
			return allAtLeast(recent[:HotStreakLen], HighValueThreshold)
		},
	},
	{
		// Last 5 finds all low: elevated range to re-engage after a dry spell.
		Class: StreakCold,
		Range: PayoutRange{Min: 100, Max: 800},
		Matches: func(recent []Money) bool {
			return len(recent) >= ColdStreakLen && allAtMost(recent[:ColdStreakLen], LowValueThreshold)
		},
	},
	{
		Class:   StreakNormal,
		Range:   PayoutRange{Min: 25, Max: 500},
		Matches: func(recent []Money) bool { return true },
	},
}

// ClassifyStreak returns the first matching rule for a player's recent find
// values (most recent first).
func ClassifyStreak(recent []Money) PayoutRule {
	for _, rule := range payoutRules {
		if rule.Matches(recent) {
			return rule
		}
	}
	return payoutRules[len(payoutRules)-1]
}

// PoolPayout draws a pool coin value from the range selected by the streak
// cascade. roll must return a uniform float in [0,1); the draw is raised to
// the bias exponent before scaling so low values are gently favored. The
// result is always inside the selected range, rounded to the cent.
func PoolPayout(recent []Money, roll func() float64) (Money, StreakClass) {
	rule := ClassifyStreak(recent)
	r := roll()
	if r < 0 {
		r = 0
	} else if r >= 1 {
		r = math.Nextafter(1, 0)
	}
	span := float64(rule.Range.Max - rule.Range.Min)
	value := rule.Range.Min + Money(math.Round(span*math.Pow(r, payoutBiasExponent)))
	if value > rule.Range.Max {
		value = rule.Range.Max
	}
	return value, rule.Class
}

func allAtLeast(values []Money, threshold Money) bool {
	for _, v := range values {
		if v < threshold {
			return false
		}
	}
	return len(values) > 0
}

func allAtMost(values []Money, threshold Money) bool {
	for _, v := range values {
		if v > threshold {
			return false
		}
	}
	return len(values) > 0
}
