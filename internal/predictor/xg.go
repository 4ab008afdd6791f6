package predictor

// Expected goals are kept inside the band a real match can plausibly produce
const (
	xgFloor = 0.2
	xgCeil  = 5.0
)

// Form swings expected goals by at most ±20%
const formImpactScale = 0.20

// ExpectedGoals combines a side's attack strength, the opponent's defensive
// weakness, the league scoring rate, home advantage and recent form into the
// Poisson rate parameter for that side.
func ExpectedGoals(attack, opponentDefense, leagueAvg, homeAdvantage, formImpact float64, isHome bool) float64 {
	xg := attack * opponentDefense * (leagueAvg / 2)

	if isHome {
		xg *= 1 + homeAdvantage
	}

	xg *= 1 + formImpact*formImpactScale

	return clamp(xg, xgFloor, xgCeil)
}
