package predictor

import (
	"sort"

	"github.com/yourusername/goalcast/internal/models"
)

// Risk tiers by model probability
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// marketCandidate pairs a market with the model's probability and the
// bookmaker's price for it
type marketCandidate struct {
	name string
	prob float64
	odds float64
}

// DetectValueBets compares model probabilities against bookmaker prices and
// surfaces wagers whose confidence-adjusted edge clears the tiered minimum.
// Longshots (model probability < 0.25), prices above the 5.0 ceiling and
// "Low" confidence-tier signals are never reported. Results are sorted
// descending by adjusted edge.
func DetectValueBets(match *models.Match, home, draw, away float64,
	overUnder map[string]models.OverUnderProb, btsYes, confidence float64, p Params) []models.ValueBet {

	if match.Odds == nil || confidence < p.ValueMinConfidence {
		return nil
	}
	odds := match.Odds

	candidates := []marketCandidate{
		{models.MarketHomeWin, home, odds.HomeWin},
		{models.MarketDraw, draw, odds.Draw},
		{models.MarketAwayWin, away, odds.AwayWin},
	}

	type ouMarket struct {
		line      string
		overName  string
		underName string
		overOdds  float64
		underOdds float64
	}
	for _, ou := range []ouMarket{
		{"1.5", models.MarketOver15, models.MarketUnder15, odds.Over15, odds.Under15},
		{"2.5", models.MarketOver25, models.MarketUnder25, odds.Over25, odds.Under25},
		{"3.5", models.MarketOver35, models.MarketUnder35, odds.Over35, odds.Under35},
	} {
		pair, ok := overUnder[ou.line]
		if !ok {
			continue
		}
		candidates = append(candidates,
			marketCandidate{ou.overName, pair.Over, ou.overOdds},
			marketCandidate{ou.underName, pair.Under, ou.underOdds},
		)
	}

	candidates = append(candidates,
		marketCandidate{models.MarketBTSYes, btsYes, odds.BTSYes},
		marketCandidate{models.MarketBTSNo, 1 - btsYes, odds.BTSNo},
		marketCandidate{models.MarketDC1X, home + draw, odds.DC1X},
		marketCandidate{models.MarketDC12, home + away, odds.DC12},
		marketCandidate{models.MarketDCX2, draw + away, odds.DCX2},
	)

	var bets []models.ValueBet
	for _, c := range candidates {
		if bet, ok := evaluateMarket(c, confidence, p); ok {
			bets = append(bets, bet)
		}
	}

	sort.SliceStable(bets, func(i, j int) bool {
		if bets[i].AdjustedEdgePct != bets[j].AdjustedEdgePct {
			return bets[i].AdjustedEdgePct > bets[j].AdjustedEdgePct
		}
		return bets[i].Market < bets[j].Market
	})

	return bets
}

func evaluateMarket(c marketCandidate, confidence float64, p Params) (models.ValueBet, bool) {
	if !models.Offered(c.odds) {
		return models.ValueBet{}, false
	}

	implied := models.Implied(c.odds)
	edge := c.prob*c.odds - 1
	adjustedEdge := edge * (confidence / 100)

	if adjustedEdge <= minEdgeForOdds(c.odds) ||
		c.prob <= implied ||
		c.odds > p.ValueMaxOdds ||
		c.prob < p.ValueMinProbability {
		return models.ValueBet{}, false
	}

	tier := confidenceTier(adjustedEdge, confidence)
	if tier == models.ConfidenceLow {
		// Value signals below the usability floor are not reported at all
		return models.ValueBet{}, false
	}

	kelly := (c.prob*c.odds - 1) / (c.odds - 1) * 100

	return models.ValueBet{
		Market:             c.name,
		ModelProbability:   c.prob,
		BookmakerOdds:      c.odds,
		ImpliedProbability: implied,
		EdgePct:            (c.prob - implied) * 100,
		AdjustedEdgePct:    adjustedEdge * 100,
		ExpectedValue:      edge,
		KellyPct:           clamp(kelly, 0, p.KellyCapPct),
		RiskTier:           riskTier(c.prob),
		ConfidenceTier:     tier,
	}, true
}

// minEdgeForOdds returns the minimum adjusted edge a price must clear.
// Higher odds demand proportionally stronger evidence.
func minEdgeForOdds(odds float64) float64 {
	switch {
	case odds > 3.0:
		return 0.10
	case odds > 2.5:
		return 0.08
	default:
		return 0.05
	}
}

func riskTier(prob float64) string {
	switch {
	case prob > 0.6:
		return RiskLow
	case prob > 0.45:
		return RiskMedium
	default:
		return RiskHigh
	}
}

func confidenceTier(adjustedEdge, confidence float64) string {
	switch {
	case adjustedEdge > 0.15 && confidence > 75:
		return models.ConfidenceVeryHigh
	case adjustedEdge > 0.12 && confidence > 70:
		return models.ConfidenceHigh
	case adjustedEdge > 0.08 && confidence > 60:
		return models.ConfidenceMedium
	default:
		return models.ConfidenceLow
	}
}
