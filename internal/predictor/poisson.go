package predictor

import (
	"math"
	"sort"

	"github.com/yourusername/goalcast/internal/models"
)

// Over/under lines the engine reports
var overUnderLines = []struct {
	key       string
	threshold int // minimum total goals for "over"
}{
	{"0.5", 1},
	{"1.5", 2},
	{"2.5", 3},
	{"3.5", 4},
}

// poissonPMF returns P(X = k) for a Poisson variable with rate lambda
func poissonPMF(k int, lambda float64) float64 {
	return math.Pow(lambda, float64(k)) * math.Exp(-lambda) / factorial(k)
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// dixonColesTau adjusts the four low-score cells of the joint distribution.
// Independent Poisson underestimates 0-0 and 1-1 and overestimates 0-1 and
// 1-0; tau scales them by the correlation coefficient rho.
func dixonColesTau(homeGoals, awayGoals int, lambdaHome, lambdaAway, rho float64) float64 {
	switch {
	case homeGoals == 0 && awayGoals == 0:
		return 1 - lambdaHome*lambdaAway*rho
	case homeGoals == 0 && awayGoals == 1:
		return 1 + lambdaHome*rho
	case homeGoals == 1 && awayGoals == 0:
		return 1 + lambdaAway*rho
	case homeGoals == 1 && awayGoals == 1:
		return 1 - rho
	default:
		return 1.0
	}
}

// jointProbability returns the Dixon-Coles corrected probability of an exact
// scoreline
func jointProbability(homeGoals, awayGoals int, lambdaHome, lambdaAway, rho float64) float64 {
	prob := poissonPMF(homeGoals, lambdaHome) * poissonPMF(awayGoals, lambdaAway)
	if homeGoals <= 1 && awayGoals <= 1 {
		prob *= dixonColesTau(homeGoals, awayGoals, lambdaHome, lambdaAway, rho)
	}
	return prob
}

// OutcomeProbabilities sums the truncated joint distribution into the 1X2
// triple. The result is renormalized so the three probabilities sum to
// exactly 1.
func OutcomeProbabilities(lambdaHome, lambdaAway float64, p Params) (home, draw, away float64) {
	for h := 0; h <= p.MaxGoals; h++ {
		for a := 0; a <= p.MaxGoals; a++ {
			prob := jointProbability(h, a, lambdaHome, lambdaAway, p.Rho)
			switch {
			case h > a:
				home += prob
			case h == a:
				draw += prob
			default:
				away += prob
			}
		}
	}

	total := home + draw + away
	return home / total, draw / total, away / total
}

// ExactScores ranks scorelines by corrected joint probability and returns
// the top N. Ties break on the scoreline string so output is deterministic.
func ExactScores(lambdaHome, lambdaAway float64, p Params) []models.ExactScore {
	scores := make([]models.ExactScore, 0, (p.ScorelineMaxGoals+1)*(p.ScorelineMaxGoals+1))

	for h := 0; h <= p.ScorelineMaxGoals; h++ {
		for a := 0; a <= p.ScorelineMaxGoals; a++ {
			scores = append(scores, models.ExactScore{
				Score:       models.Score{Home: h, Away: a}.String(),
				Probability: jointProbability(h, a, lambdaHome, lambdaAway, p.Rho),
			})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Probability != scores[j].Probability {
			return scores[i].Probability > scores[j].Probability
		}
		return scores[i].Score < scores[j].Score
	})

	if len(scores) > p.TopScorelines {
		scores = scores[:p.TopScorelines]
	}
	return scores
}

// OverUnderProbabilities computes the over/under pair for each reported line
// from the total-goals marginal, then regularizes each over probability
// toward the league's historical baseline (model weight 0.70 by default) to
// damp small-sample team statistics.
func OverUnderProbabilities(lambdaHome, lambdaAway float64, ctx LeagueContext, p Params) map[string]models.OverUnderProb {
	const maxTotal = 10

	totalProbs := make([]float64, maxTotal+1)
	for total := 0; total <= maxTotal; total++ {
		prob := 0.0
		for h := 0; h <= total; h++ {
			prob += poissonPMF(h, lambdaHome) * poissonPMF(total-h, lambdaAway)
		}
		totalProbs[total] = prob
	}

	out := make(map[string]models.OverUnderProb, len(overUnderLines))
	for _, line := range overUnderLines {
		over := 0.0
		for total := line.threshold; total <= maxTotal; total++ {
			over += totalProbs[total]
		}

		if baseline, ok := ctx.OverBaseline[line.key]; ok {
			over = over*p.OverUnderModelWeight + baseline*(1-p.OverUnderModelWeight)
		}

		over = clamp(over, 0, 1)
		out[line.key] = models.OverUnderProb{Over: over, Under: 1 - over}
	}
	return out
}

// BTSProbabilities blends three independent both-teams-score estimators:
// the Poisson-implied P(home>0)*P(away>0), the two teams' historical BTS
// rates, and the league baseline, weighted 50/30/20.
func BTSProbabilities(lambdaHome, lambdaAway float64, match *models.Match, ctx LeagueContext, p Params) (yes, no float64) {
	probHomeScores := 1 - poissonPMF(0, lambdaHome)
	probAwayScores := 1 - poissonPMF(0, lambdaAway)
	poissonBTS := probHomeScores * probAwayScores

	historicalBTS := defaultBaseline
	if match.HomeStats != nil && match.AwayStats != nil {
		historicalBTS = (match.HomeStats.BTSPercentage/100 + match.AwayStats.BTSPercentage/100) / 2
	}

	yes = poissonBTS*p.BTSPoissonWeight +
		historicalBTS*p.BTSHistoricalWeight +
		ctx.BTSBaseline*p.BTSLeagueWeight
	yes = clamp(yes, 0, 1)
	return yes, 1 - yes
}
