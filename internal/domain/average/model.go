package average

import "math"

// SeasonRecord is the precomputed per-player-per-season average row.
type SeasonRecord struct {
	PlayerID        int64
	Season          string
	RegularPoints   float64
	RegularRebounds float64
	RegularAssists  float64
	PlayoffPoints   float64
	PlayoffRebounds float64
	PlayoffAssists  float64
}

// Averages is a points/rebounds/assists triple.
type Averages struct {
	Points   float64
	Rebounds float64
	Assists  float64
}

// RoundTo2 rounds half away from zero at two decimals.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
