package models

// MatchOdds represents bookmaker decimal odds for the markets the model
// evaluates. A zero or sub-1.0 price means the market is not offered.
type MatchOdds struct {
	HomeWin float64 `json:"home_win"`
	Draw    float64 `json:"draw"`
	AwayWin float64 `json:"away_win"`

	Over15  float64 `json:"over_1_5"`
	Under15 float64 `json:"under_1_5"`
	Over25  float64 `json:"over_2_5"`
	Under25 float64 `json:"under_2_5"`
	Over35  float64 `json:"over_3_5"`
	Under35 float64 `json:"under_3_5"`

	BTSYes float64 `json:"bts_yes"`
	BTSNo  float64 `json:"bts_no"`

	DC1X float64 `json:"dc_1x"`
	DC12 float64 `json:"dc_12"`
	DCX2 float64 `json:"dc_x2"`
}

// Offered reports whether a decimal price is a usable market quote
func Offered(odds float64) bool {
	return odds > 1.0
}

// Implied returns the bookmaker-implied probability for a decimal price,
// or 0 when the market is not offered
func Implied(odds float64) float64 {
	if !Offered(odds) {
		return 0
	}
	return 1.0 / odds
}
