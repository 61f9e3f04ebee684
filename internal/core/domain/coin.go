package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// CollectRadiusMeters is the maximum distance at which a coin can be collected.
const CollectRadiusMeters = 10.0

// CoinKind distinguishes coins with a value fixed at hide time from pool
// coins whose value is computed at the moment of collection.
type CoinKind string

const (
	CoinKindFixed CoinKind = "FIXED"
	CoinKindPool  CoinKind = "POOL"
)

// CoinStatus represents the lifecycle state of a hidden coin.
// VISIBLE -> COLLECTED -> CONFIRMED; retrieval by the hider removes the coin
// while it is still VISIBLE.
type CoinStatus string

const (
	CoinStatusVisible   CoinStatus = "VISIBLE"
	CoinStatusCollected CoinStatus = "COLLECTED"
	CoinStatusConfirmed CoinStatus = "CONFIRMED"
)

// Location is a GPS position in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// DistanceMeters returns the great-circle distance to another location,
// computed with the haversine formula on a spherical Earth.
func (l Location) DistanceMeters(other Location) float64 {
	const earthRadiusMeters = 6371000.0

	lat1 := l.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - l.Lat) * math.Pi / 180
	dLng := (other.Lng - l.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// Coin is a virtual coin hidden at a GPS location. Value is set at hide time
// for FIXED coins and stays nil for POOL coins until the moment of
// collection, at which point it is computed and frozen.
type Coin struct {
	ID           uuid.UUID  `json:"id"`
	Kind         CoinKind   `json:"kind"`
	Value        *Money     `json:"value,omitempty"`
	Contribution Money      `json:"contribution"`
	Location     Location   `json:"location"`
	HiderID      uuid.UUID  `json:"hider_id"`
	CollectorID  *uuid.UUID `json:"collector_id,omitempty"`
	Status       CoinStatus `json:"status"`
	HiddenAt     time.Time  `json:"hidden_at"`
	CollectedAt  *time.Time `json:"collected_at,omitempty"`
}

// IsCollectable returns true if the coin can still be collected or retrieved.
func (c *Coin) IsCollectable() bool {
	return c.Status == CoinStatusVisible
}
