// Package predictor implements the match prediction engine: attack/defense
// ratings, expected goals, a Dixon-Coles corrected bivariate Poisson model,
// uncertainty scoring, value bet detection and recommendations.
package predictor

import (
	"fmt"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"
	"github.com/yourusername/goalcast/internal/metrics"
	"github.com/yourusername/goalcast/internal/models"
)

// degradations collects the neutral-default substitutions made during one
// prediction so that degraded inputs stay observable
type degradations struct {
	list []models.Degradation
}

func (d *degradations) add(component, reason, applied string) {
	d.list = append(d.list, models.Degradation{
		Component: component,
		Reason:    reason,
		Default:   applied,
	})
	metrics.RecordDegradedInput(component)
}

// Engine orchestrates the prediction pipeline. It owns a per-league context
// cache: contexts are derived at most once per league per engine and shared
// read-only across predictions, so one engine per batch is the intended use.
// Predict itself is a pure function of its inputs and safe to call from
// concurrent goroutines.
type Engine struct {
	params  Params
	logger  *logrus.Logger
	leagues *gocache.Cache
}

// NewEngine creates a prediction engine with the given parameters
func NewEngine(params Params, logger *logrus.Logger) (*Engine, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model parameters: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
	}

	return &Engine{
		params:  params,
		logger:  logger,
		leagues: gocache.New(gocache.NoExpiration, 0),
	}, nil
}

// Params returns the engine parameters
func (e *Engine) Params() Params {
	return e.params
}

// Predict runs the full pipeline for one fixture. Missing statistics are
// replaced by neutral defaults and recorded on the prediction; the result is
// always usable, if low-confidence.
func (e *Engine) Predict(match *models.Match) (models.Prediction, error) {
	if match == nil {
		return models.Prediction{}, models.ErrMatchRequired
	}

	notes := &degradations{}

	ctx := e.leagueContext(match, notes)
	homeAdvantage := ctx.HomeAdvantage(e.params)

	ratings := CalculateRatings(match, ctx.AvgGoals, notes)

	formHome := e.formImpact(match.HomeForm, "home form", notes)
	formAway := e.formImpact(match.AwayForm, "away form", notes)

	homeXG := ExpectedGoals(ratings.HomeAttack, ratings.AwayDefense, ctx.AvgGoals, homeAdvantage, formHome, true)
	awayXG := ExpectedGoals(ratings.AwayAttack, ratings.HomeDefense, ctx.AvgGoals, 0, formAway, false)

	home, draw, away := OutcomeProbabilities(homeXG, awayXG, e.params)
	overUnder := OverUnderProbabilities(homeXG, awayXG, ctx, e.params)
	btsYes, btsNo := BTSProbabilities(homeXG, awayXG, match, ctx, e.params)
	exactScores := ExactScores(homeXG, awayXG, e.params)

	variance := PredictionVariance(match, homeXG, awayXG, ctx)
	confidence := ConfidenceScore(match, homeXG, awayXG, variance, ctx)
	label := ConfidenceLabel(confidence)

	valueBets := DetectValueBets(match, home, draw, away, overUnder, btsYes, confidence, e.params)
	recommendation := Recommend(home, draw, away, valueBets, confidence, variance)

	pred := models.Prediction{
		MatchID:  match.ID,
		League:   match.League,
		HomeTeam: match.HomeTeam,
		AwayTeam: match.AwayTeam,

		HomeWinProb: home,
		DrawProb:    draw,
		AwayWinProb: away,

		HomeXG:  homeXG,
		AwayXG:  awayXG,
		TotalXG: homeXG + awayXG,

		HomeAttackRating:  ratings.HomeAttack,
		HomeDefenseRating: ratings.HomeDefense,
		AwayAttackRating:  ratings.AwayAttack,
		AwayDefenseRating: ratings.AwayDefense,

		OverUnder: overUnder,

		BTSYesProb: btsYes,
		BTSNoProb:  btsNo,

		ExactScores: exactScores,
		ValueBets:   valueBets,

		Confidence:      label,
		ConfidenceScore: confidence,
		Variance:        variance,
		RecommendedBet:  recommendation,

		HomeAdvantageImpact: homeAdvantage,
		FormImpactHome:      formHome,
		FormImpactAway:      formAway,
		LeagueDifficulty:    ctx.Difficulty(),

		Degradations: notes.list,
	}

	metrics.RecordPrediction(match.League, label, confidence)
	for _, vb := range valueBets {
		metrics.RecordValueBet(vb.Market)
	}

	e.logger.WithFields(logrus.Fields{
		"match":      fmt.Sprintf("%s vs %s", match.HomeTeam, match.AwayTeam),
		"league":     match.League,
		"home_xg":    homeXG,
		"away_xg":    awayXG,
		"confidence": confidence,
		"value_bets": len(valueBets),
	}).Debug("Prediction produced")

	return pred, nil
}

// leagueContext returns the cached context for the fixture's league,
// deriving and caching it on first sight. Writes are idempotent: a
// concurrent duplicate derivation only costs redundant work.
func (e *Engine) leagueContext(match *models.Match, notes *degradations) LeagueContext {
	if match.LeagueStats == nil {
		notes.add("league context", "no league statistics", "european averages")
	}

	if match.League == "" {
		return ExtractLeagueContext(match.LeagueStats)
	}

	if cached, found := e.leagues.Get(match.League); found {
		if ctx, ok := cached.(LeagueContext); ok {
			return ctx
		}
	}

	ctx := ExtractLeagueContext(match.LeagueStats)
	e.leagues.Set(match.League, ctx, gocache.NoExpiration)
	return ctx
}

func (e *Engine) formImpact(form []models.FormOutcome, component string, notes *degradations) float64 {
	if len(form) < minFormMatches {
		notes.add(component, fmt.Sprintf("fewer than %d recent results", minFormMatches), "form impact 0.0")
		return 0
	}
	return FormImpact(form, e.params.FormWeights)
}
