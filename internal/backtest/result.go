package backtest

import "encoding/json"

// Calibration bucket labels, in ascending probability order
var calibrationRanges = []string{"0-20%", "20-40%", "40-60%", "60-80%", "80-100%"}

// Confidence band labels, strongest first
var confidenceBands = []string{"75-100", "60-75", "40-60", "0-40"}

// Accuracy represents 1X2 hit rates over the filtered records
type Accuracy struct {
	Top1Pct   float64 `json:"top_1_pct"`
	Top2Pct   float64 `json:"top_2_pct"`
	Top1Count int     `json:"top_1_count"`
	Top2Count int     `json:"top_2_count"`
	Total     int     `json:"total"`
}

// CalibrationBin compares mean predicted probability against the realized
// hit rate inside one probability bucket
type CalibrationBin struct {
	Range        string  `json:"range"`
	AvgPredicted float64 `json:"avg_predicted"` // percent
	AvgActual    float64 `json:"avg_actual"`    // percent
	Diff         float64 `json:"diff"`
	Count        int     `json:"count"`
}

// BetOutcome represents one simulated wager on a record's top value bet
type BetOutcome struct {
	Match   string  `json:"match"`
	Market  string  `json:"market"`
	Odds    float64 `json:"odds"`
	Stake   float64 `json:"stake"`
	Return  float64 `json:"return"`
	Profit  float64 `json:"profit"`
	Won     bool    `json:"won"`
	EdgePct float64 `json:"edge_pct"`
}

// FinancialSummary aggregates the simulated value-bet performance
type FinancialSummary struct {
	TotalBets   int          `json:"total_bets"`
	Won         int          `json:"won"`
	Lost        int          `json:"lost"`
	TotalStaked float64      `json:"total_staked"`
	TotalReturn float64      `json:"total_return"`
	NetProfit   float64      `json:"net_profit"`
	ROI         float64      `json:"roi"`      // percent
	WinRate     float64      `json:"win_rate"` // percent
	AvgOdds     float64      `json:"avg_odds"`
	SharpeRatio float64      `json:"sharpe_ratio"` // mean profit / stdev profit
	Bets        []BetOutcome `json:"bets,omitempty"`
}

// BandSummary represents accuracy and ROI for one breakdown bucket
type BandSummary struct {
	Count       int     `json:"count"`
	AccuracyPct float64 `json:"accuracy"`
	ROI         float64 `json:"roi"`
}

// MarketSummary represents value-bet performance for one market label
type MarketSummary struct {
	Count      int     `json:"count"`
	Won        int     `json:"won"`
	Lost       int     `json:"lost"`
	ROI        float64 `json:"roi"`
	WinRatePct float64 `json:"win_rate"`
}

// Result represents one analyzer run. Fully derived from the filtered
// records; no state is carried between runs.
type Result struct {
	TotalMatches    int `json:"total_matches"`
	OriginalMatches int `json:"original_matches"`

	Accuracy   Accuracy `json:"accuracy"`
	BrierScore float64  `json:"brier_score"`
	LogLoss    float64  `json:"log_loss"`

	Calibration []CalibrationBin `json:"calibration"`

	ValueBets FinancialSummary `json:"value_bets"`

	ByConfidence map[string]BandSummary   `json:"by_confidence"`
	ByLeague     map[string]BandSummary   `json:"by_league"`
	ByMarket     map[string]MarketSummary `json:"by_market"`
}

// ToJSON renders the result for reporting
func (r Result) ToJSON() string {
	data, _ := json.MarshalIndent(r, "", "  ")
	return string(data)
}

// emptyResult returns the well-defined zero result produced when every
// record is filtered out. All aggregates are zeros and empty maps, never
// nil, so reporting code has one path.
func emptyResult(originalMatches int) Result {
	bins := make([]CalibrationBin, len(calibrationRanges))
	for i, rng := range calibrationRanges {
		bins[i] = CalibrationBin{Range: rng}
	}
	return Result{
		OriginalMatches: originalMatches,
		Calibration:     bins,
		ValueBets:       FinancialSummary{Bets: []BetOutcome{}},
		ByConfidence:    map[string]BandSummary{},
		ByLeague:        map[string]BandSummary{},
		ByMarket:        map[string]MarketSummary{},
	}
}
