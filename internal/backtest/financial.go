package backtest

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/yourusername/goalcast/internal/models"
)

// Kelly staking never commits more than a quarter of the flat unit
const kellyStakeCap = 0.25

// simulateValueBets places one simulated wager on each record's top value
// bet, flat-staked or Kelly-sized, and aggregates the financial outcome.
// Money amounts accumulate as decimals to avoid drift over long archives.
func simulateValueBets(records []models.BacktestRecord, staking Staking) FinancialSummary {
	stakePerBet := staking.StakePerBet
	if stakePerBet <= 0 {
		stakePerBet = defaultStakePerBet
	}
	unit := decimal.NewFromFloat(stakePerBet)

	summary := FinancialSummary{Bets: []BetOutcome{}}
	totalStaked := decimal.Zero
	totalReturn := decimal.Zero

	for i := range records {
		best := records[i].Prediction.BestValueBet()
		if best == nil || !models.Offered(best.BookmakerOdds) {
			continue
		}

		stake := unit
		if staking.UseKelly {
			stake = kellyStake(unit, best.KellyPct)
		}

		won := settleBet(best.Market, records[i].Actual)

		betReturn := decimal.Zero
		if won {
			betReturn = stake.Mul(decimal.NewFromFloat(best.BookmakerOdds))
		}
		profit := betReturn.Sub(stake)

		summary.Bets = append(summary.Bets, BetOutcome{
			Match:   fmt.Sprintf("%s vs %s", records[i].HomeTeam, records[i].AwayTeam),
			Market:  best.Market,
			Odds:    best.BookmakerOdds,
			Stake:   stake.InexactFloat64(),
			Return:  betReturn.InexactFloat64(),
			Profit:  profit.InexactFloat64(),
			Won:     won,
			EdgePct: best.AdjustedEdgePct,
		})

		totalStaked = totalStaked.Add(stake)
		totalReturn = totalReturn.Add(betReturn)
		if won {
			summary.Won++
		} else {
			summary.Lost++
		}
	}

	summary.TotalBets = len(summary.Bets)
	if summary.TotalBets == 0 {
		return summary
	}

	netProfit := totalReturn.Sub(totalStaked)
	summary.TotalStaked = totalStaked.Round(2).InexactFloat64()
	summary.TotalReturn = totalReturn.Round(2).InexactFloat64()
	summary.NetProfit = netProfit.Round(2).InexactFloat64()

	if totalStaked.IsPositive() {
		summary.ROI = netProfit.Div(totalStaked).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
	}
	summary.WinRate = float64(summary.Won) / float64(summary.TotalBets) * 100

	oddsSum := 0.0
	profits := make([]float64, len(summary.Bets))
	for i, b := range summary.Bets {
		oddsSum += b.Odds
		profits[i] = b.Profit
	}
	summary.AvgOdds = oddsSum / float64(summary.TotalBets)
	summary.SharpeRatio = sharpeRatio(profits)

	return summary
}

// kellyStake sizes a bet as kellyPct of the unit stake, floored at one
// currency unit and capped at a quarter of the unit
func kellyStake(unit decimal.Decimal, kellyPct float64) decimal.Decimal {
	stake := unit.Mul(decimal.NewFromFloat(kellyPct / 100))

	maxStake := unit.Mul(decimal.NewFromFloat(kellyStakeCap))
	if stake.GreaterThan(maxStake) {
		stake = maxStake
	}
	if stake.LessThan(decimal.NewFromInt(1)) {
		stake = decimal.NewFromInt(1)
	}
	return stake
}

// settleBet decides a market against the realized result. 1X2 and double
// chance settle from the outcome alone; totals and both-teams-score need the
// archived scoreline and lose when it was not recorded.
func settleBet(market string, actual *models.ActualOutcome) bool {
	if actual == nil {
		return false
	}
	outcome := actual.Outcome

	switch market {
	case models.MarketHomeWin:
		return outcome == models.OutcomeHome
	case models.MarketDraw:
		return outcome == models.OutcomeDraw
	case models.MarketAwayWin:
		return outcome == models.OutcomeAway
	case models.MarketDC1X:
		return outcome == models.OutcomeHome || outcome == models.OutcomeDraw
	case models.MarketDC12:
		return outcome == models.OutcomeHome || outcome == models.OutcomeAway
	case models.MarketDCX2:
		return outcome == models.OutcomeDraw || outcome == models.OutcomeAway
	}

	if actual.Score == nil {
		return false
	}
	total := actual.Score.Total()

	switch market {
	case models.MarketOver15:
		return total >= 2
	case models.MarketUnder15:
		return total <= 1
	case models.MarketOver25:
		return total >= 3
	case models.MarketUnder25:
		return total <= 2
	case models.MarketOver35:
		return total >= 4
	case models.MarketUnder35:
		return total <= 3
	case models.MarketBTSYes:
		return actual.Score.BothScored()
	case models.MarketBTSNo:
		return !actual.Score.BothScored()
	}

	return false
}

// sharpeRatio returns mean profit over profit standard deviation, 0 when
// fewer than two bets or when every profit is identical
func sharpeRatio(profits []float64) float64 {
	if len(profits) < 2 {
		return 0
	}

	mean := 0.0
	for _, p := range profits {
		mean += p
	}
	mean /= float64(len(profits))

	variance := 0.0
	for _, p := range profits {
		diff := p - mean
		variance += diff * diff
	}
	variance /= float64(len(profits))

	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return mean / std
}
