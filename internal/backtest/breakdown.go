package backtest

import (
	"github.com/yourusername/goalcast/internal/models"
)

// breakdownByConfidence repeats the accuracy and ROI computation per
// confidence band. Empty bands are reported with zero counts so the full
// ladder is always present.
func breakdownByConfidence(records []models.BacktestRecord, staking Staking) map[string]BandSummary {
	grouped := make(map[string][]models.BacktestRecord, len(confidenceBands))
	for _, band := range confidenceBands {
		grouped[band] = nil
	}

	for i := range records {
		grouped[confidenceBand(records[i].Prediction.ConfidenceScore)] = append(
			grouped[confidenceBand(records[i].Prediction.ConfidenceScore)], records[i])
	}

	out := make(map[string]BandSummary, len(grouped))
	for band, group := range grouped {
		out[band] = summarizeBand(group, staking)
	}
	return out
}

// breakdownByLeague repeats the accuracy and ROI computation per league
func breakdownByLeague(records []models.BacktestRecord, staking Staking) map[string]BandSummary {
	grouped := make(map[string][]models.BacktestRecord)
	for i := range records {
		league := records[i].League
		if league == "" {
			league = "Unknown"
		}
		grouped[league] = append(grouped[league], records[i])
	}

	out := make(map[string]BandSummary, len(grouped))
	for league, group := range grouped {
		out[league] = summarizeBand(group, staking)
	}
	return out
}

// breakdownByMarket groups records by the market of their top value bet and
// reports the simulated financial performance per market
func breakdownByMarket(records []models.BacktestRecord, staking Staking) map[string]MarketSummary {
	grouped := make(map[string][]models.BacktestRecord)
	for i := range records {
		best := records[i].Prediction.BestValueBet()
		if best == nil {
			continue
		}
		grouped[best.Market] = append(grouped[best.Market], records[i])
	}

	out := make(map[string]MarketSummary, len(grouped))
	for market, group := range grouped {
		fin := simulateValueBets(group, staking)
		out[market] = MarketSummary{
			Count:      len(group),
			Won:        fin.Won,
			Lost:       fin.Lost,
			ROI:        fin.ROI,
			WinRatePct: fin.WinRate,
		}
	}
	return out
}

func summarizeBand(records []models.BacktestRecord, staking Staking) BandSummary {
	if len(records) == 0 {
		return BandSummary{}
	}
	return BandSummary{
		Count:       len(records),
		AccuracyPct: calculateAccuracy(records).Top1Pct,
		ROI:         simulateValueBets(records, staking).ROI,
	}
}

func confidenceBand(score float64) string {
	switch {
	case score >= 75:
		return "75-100"
	case score >= 60:
		return "60-75"
	case score >= 40:
		return "40-60"
	default:
		return "0-40"
	}
}
