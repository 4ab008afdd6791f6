// Package main provides the goalcast CLI: predict fixtures, backtest the
// archive and manage archived snapshots.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/goalcast/internal/archive"
	"github.com/yourusername/goalcast/internal/backtest"
	"github.com/yourusername/goalcast/internal/config"
	"github.com/yourusername/goalcast/internal/health"
	"github.com/yourusername/goalcast/internal/logger"
	"github.com/yourusername/goalcast/internal/metrics"
	"github.com/yourusername/goalcast/internal/models"
	"github.com/yourusername/goalcast/internal/predictor"
	"github.com/yourusername/goalcast/internal/scheduler"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	cfg        *config.Config
	appLogger  *logrus.Logger
)

var rootCmd = &cobra.Command{
	Use:   "goalcast",
	Short: "Football match prediction and backtesting engine",
	Long:  `Predicts match outcomes with a Dixon-Coles corrected Poisson model, detects value bets against bookmaker odds and backtests archived predictions.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadOrDefault(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to configuration file")

	rootCmd.AddCommand(newPredictCmd())
	rootCmd.AddCommand(newBacktestCmd())
	rootCmd.AddCommand(newArchiveDatesCmd())
	rootCmd.AddCommand(newScheduleCmd())
	rootCmd.AddCommand(newVersionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func newPredictCmd() *cobra.Command {
	var (
		fixturesPath string
		archiveRun   bool
	)

	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict a batch of fixtures",
		RunE: func(cmd *cobra.Command, args []string) error {
			matches, err := loadFixtures(fixturesPath)
			if err != nil {
				return err
			}

			engine, err := predictor.NewEngine(predictor.FromModelConfig(cfg.Model), appLogger)
			if err != nil {
				return err
			}

			predictions := make([]models.Prediction, 0, len(matches))
			records := make([]models.BacktestRecord, 0, len(matches))
			for i := range matches {
				pred, err := engine.Predict(&matches[i])
				if err != nil {
					return fmt.Errorf("failed to predict %s vs %s: %w",
						matches[i].HomeTeam, matches[i].AwayTeam, err)
				}
				predictions = append(predictions, pred)
				records = append(records, models.BacktestRecord{
					MatchID:    matches[i].ID,
					League:     matches[i].League,
					HomeTeam:   matches[i].HomeTeam,
					AwayTeam:   matches[i].AwayTeam,
					MatchDate:  matches[i].KickoffAt,
					Prediction: pred,
					Odds:       snapshotOdds(&matches[i]),
				})
			}

			if archiveRun {
				ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
				defer cancel()

				store, cleanup, err := archive.Open(ctx, cfg, appLogger)
				if err != nil {
					return fmt.Errorf("failed to open archive: %w", err)
				}
				defer cleanup()

				if err := store.Save(ctx, time.Now(), records); err != nil {
					return fmt.Errorf("failed to archive predictions: %w", err)
				}
				appLogger.WithField("count", len(records)).Info("Predictions archived")
			}

			return printJSON(predictions)
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "Path to a JSON file of fixtures")
	cmd.Flags().BoolVar(&archiveRun, "archive", false, "Archive the predictions for backtesting")
	_ = cmd.MarkFlagRequired("fixtures")

	return cmd
}

func newBacktestCmd() *cobra.Command {
	var (
		startDate     string
		endDate       string
		minConfidence float64
		maxConfidence float64
		maxVariance   float64
		minEdge       float64
		valueBetsOnly bool
		leagues       []string
		stake         float64
		useKelly      bool
	)

	cmd := &cobra.Command{
		Use:   "backtest",
		Short: "Analyze archived predictions against realized outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := time.Parse(archive.DayFormat, startDate)
			if err != nil {
				return fmt.Errorf("invalid --start date: %w", err)
			}
			end, err := time.Parse(archive.DayFormat, endDate)
			if err != nil {
				return fmt.Errorf("invalid --end date: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
			defer cancel()

			store, cleanup, err := archive.Open(ctx, cfg, appLogger)
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer cleanup()

			records, err := store.LoadRange(ctx, start, end)
			if err != nil {
				return fmt.Errorf("failed to load archive range: %w", err)
			}

			filter := backtest.Filter{
				ValueBetsOnly: valueBetsOnly,
				Leagues:       leagues,
				Staking: backtest.Staking{
					StakePerBet: cfg.Backtest.StakePerBet,
					UseKelly:    cfg.Backtest.UseKelly,
				},
			}
			if cmd.Flags().Changed("min-confidence") {
				filter.MinConfidence = backtest.Float(minConfidence)
			}
			if cmd.Flags().Changed("max-confidence") {
				filter.MaxConfidence = backtest.Float(maxConfidence)
			}
			if cmd.Flags().Changed("max-variance") {
				filter.MaxVariance = backtest.Float(maxVariance)
			}
			if cmd.Flags().Changed("min-edge") {
				filter.MinEdgePct = backtest.Float(minEdge)
			}
			if cmd.Flags().Changed("stake") {
				filter.Staking.StakePerBet = stake
			}
			if cmd.Flags().Changed("kelly") {
				filter.Staking.UseKelly = useKelly
			}

			analyzer := backtest.NewAnalyzer(appLogger)
			result := analyzer.Analyze(records, filter)

			fmt.Println(result.ToJSON())
			return nil
		},
	}

	cmd.Flags().StringVar(&startDate, "start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&minConfidence, "min-confidence", 0, "Minimum confidence score")
	cmd.Flags().Float64Var(&maxConfidence, "max-confidence", 0, "Maximum confidence score")
	cmd.Flags().Float64Var(&maxVariance, "max-variance", 0, "Maximum prediction variance")
	cmd.Flags().Float64Var(&minEdge, "min-edge", 0, "Minimum adjusted edge of the top value bet, percent")
	cmd.Flags().BoolVar(&valueBetsOnly, "value-bets-only", false, "Only records with at least one value bet")
	cmd.Flags().StringSliceVar(&leagues, "league", nil, "Restrict to leagues (repeatable)")
	cmd.Flags().Float64Var(&stake, "stake", 0, "Flat stake per simulated bet")
	cmd.Flags().BoolVar(&useKelly, "kelly", false, "Size simulated bets by Kelly percentage")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newArchiveDatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archive-dates",
		Short: "List archived snapshot days",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			store, cleanup, err := archive.Open(ctx, cfg, appLogger)
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer cleanup()

			days, err := store.Dates(ctx)
			if err != nil {
				return fmt.Errorf("failed to list archive dates: %w", err)
			}
			for _, day := range days {
				fmt.Println(day)
			}
			return nil
		},
	}
}

func newScheduleCmd() *cobra.Command {
	var (
		fixturesPath string
		cronExpr     string
		metricsAddr  string
		healthAddr   string
	)

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run a recurring predict-and-archive job",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			store, cleanup, err := archive.Open(ctx, cfg, appLogger)
			if err != nil {
				return fmt.Errorf("failed to open archive: %w", err)
			}
			defer cleanup()

			engine, err := predictor.NewEngine(predictor.FromModelConfig(cfg.Model), appLogger)
			if err != nil {
				return err
			}

			sched := scheduler.NewScheduler(appLogger)
			err = sched.ScheduleSnapshot(cronExpr, "daily-predictions", func(jobCtx context.Context) error {
				return snapshotFixtures(jobCtx, fixturesPath, engine, store)
			})
			if err != nil {
				return err
			}
			if err := sched.Start(); err != nil {
				return err
			}

			healthSrv := health.NewServer(health.Config{
				ServiceName: cfg.App.Name,
				Version:     Version,
				Addr:        healthAddr,
				Logger:      appLogger,
				Checks: map[string]health.CheckFunc{
					"archive": func(checkCtx context.Context) error {
						_, err := store.Dates(checkCtx)
						return err
					},
				},
			})
			if err := healthSrv.Start(ctx); err != nil {
				return err
			}
			healthSrv.SetReady(true)

			srv := &http.Server{Addr: metricsAddr, Handler: metricsMux()}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					appLogger.WithError(err).Error("Metrics server failed")
				}
			}()
			appLogger.WithField("addr", metricsAddr).Info("Metrics server listening")

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			<-sigChan

			appLogger.Info("Shutting down")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()
			_ = srv.Shutdown(shutdownCtx)
			return sched.Stop()
		},
	}

	cmd.Flags().StringVar(&fixturesPath, "fixtures", "", "Path to a JSON file of fixtures, re-read on every run")
	cmd.Flags().StringVar(&cronExpr, "cron", "0 6 * * *", "Cron expression (UTC)")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "Prometheus metrics listen address")
	cmd.Flags().StringVar(&healthAddr, "health-addr", ":8080", "Health check listen address")
	_ = cmd.MarkFlagRequired("fixtures")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("goalcast %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
		},
	}
}

// snapshotFixtures predicts the fixtures file and archives the results under
// today's snapshot day
func snapshotFixtures(ctx context.Context, fixturesPath string, engine *predictor.Engine, store archive.Store) error {
	matches, err := loadFixtures(fixturesPath)
	if err != nil {
		return err
	}

	records := make([]models.BacktestRecord, 0, len(matches))
	for i := range matches {
		pred, err := engine.Predict(&matches[i])
		if err != nil {
			return fmt.Errorf("failed to predict %s vs %s: %w",
				matches[i].HomeTeam, matches[i].AwayTeam, err)
		}
		records = append(records, models.BacktestRecord{
			MatchID:    matches[i].ID,
			League:     matches[i].League,
			HomeTeam:   matches[i].HomeTeam,
			AwayTeam:   matches[i].AwayTeam,
			MatchDate:  matches[i].KickoffAt,
			Prediction: pred,
			Odds:       snapshotOdds(&matches[i]),
		})
	}

	return store.Save(ctx, time.Now(), records)
}

// snapshotOdds freezes the odds attached to a fixture so settled records keep
// the prices the prediction was made against
func snapshotOdds(m *models.Match) models.MatchOdds {
	if m.Odds == nil {
		return models.MatchOdds{}
	}
	return *m.Odds
}

func loadFixtures(path string) ([]models.Match, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixtures file: %w", err)
	}
	var matches []models.Match
	if err := json.Unmarshal(data, &matches); err != nil {
		return nil, fmt.Errorf("failed to parse fixtures file: %w", err)
	}
	return matches, nil
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	return mux
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
