package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestFindLimitState_Raise(t *testing.T) {
	now := time.Now().UTC()
	s := NewFindLimitState(uuid.New(), now)
	assert.Equal(t, DefaultFindLimit, s.Limit)

	// Larger contribution raises the limit.
	assert.True(t, s.Raise(1000, now))
	assert.Equal(t, Money(1000), s.Limit)

	// Smaller or equal contributions never decrease it.
	assert.False(t, s.Raise(500, now))
	assert.Equal(t, Money(1000), s.Limit)
	assert.False(t, s.Raise(1000, now))
	assert.Equal(t, Money(1000), s.Limit)

	assert.True(t, s.Raise(2500, now))
	assert.Equal(t, Money(2500), s.Limit)
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		limit Money
		want  string
	}{
		{0, "Novice"},
		{100, "Novice"},
		{101, "Scout"},
		{1000, "Scout"},
		{1001, "Seeker"},
		{5000, "Seeker"},
		{5001, "Pathfinder"},
		{10000, "Pathfinder"},
		{10001, "Legend"},
		{1000000, "Legend"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TierFor(tt.limit).Name, "limit=%d", tt.limit)
	}
}

func TestTierProgress(t *testing.T) {
	// Halfway through Scout: (550-100)/(1000-100) = 0.5
	assert.InDelta(t, 0.5, TierProgress(550), 0.0001)
	// Top of a tier
	assert.InDelta(t, 1.0, TierProgress(1000), 0.0001)
	// Unbounded top tier is always complete.
	assert.InDelta(t, 1.0, TierProgress(50000), 0.0001)
	// Bottom of the first tier
	assert.InDelta(t, 0.0, TierProgress(0), 0.0001)
}
