package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"focusforge/internal/bootstrap"
	"focusforge/internal/platform/config"
	"focusforge/internal/platform/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var dataPath string
	var verbose bool

	root := &cobra.Command{
		Use:           "focusforge",
		Short:         "Focus timer that builds houses from your attention",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataPath, "data", "", "data directory (default ~/.focusforge)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	root.AddCommand(newTUICmd(&dataPath, &verbose))
	root.AddCommand(newStatsCmd(&dataPath, &verbose))
	root.AddCommand(newAchievementsCmd(&dataPath, &verbose))
	root.AddCommand(newShopCmd(&dataPath, &verbose))
	root.AddCommand(newHistoryCmd(&dataPath, &verbose))
	root.AddCommand(newResetCmd(&dataPath, &verbose))
	return root
}

func loadApp(dataPath string, verbose bool) (*bootstrap.App, error) {
	cfg, err := config.New(dataPath)
	if err != nil {
		return nil, err
	}
	logging.Setup(cfg.DataPath, verbose)
	return bootstrap.New(cfg)
}

func newTUICmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the focusforge terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newStatsCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show focus statistics and streak",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			s, err := app.RewardsCLI.Snapshot(context.Background())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "coins: %d\n", s.Coins)
			_, _ = fmt.Fprintf(out, "streak: %d day(s), last focus %s\n", s.StreakDays, valueOrDash(s.LastFocusDate))
			_, _ = fmt.Fprintf(out, "houses built: %d\n", s.HousesBuilt)
			_, _ = fmt.Fprintf(out, "sessions: %d completed, %d failed (%d%% success)\n", s.CompletedSessions, s.FailedSessions, s.SuccessRatePercent)
			_, _ = fmt.Fprintf(out, "focus time: total %s, longest %s, average %s\n",
				formatDuration(s.TotalFocusSeconds), formatDuration(s.LongestSessionSeconds), formatDuration(s.AverageSessionSeconds))
			_, _ = fmt.Fprintf(out, "today (%s): %d session(s), %s, %d coins\n",
				s.Daily.Date, s.Daily.Sessions, formatDuration(s.Daily.Seconds), s.Daily.Coins)
			_, _ = fmt.Fprintf(out, "week %d-W%02d: %d session(s), %s\n",
				s.Weekly.Year, s.Weekly.Week, s.Weekly.Sessions, formatDuration(s.Weekly.Seconds))
			return nil
		},
	}
}

func newAchievementsCmd(dataPath *string, verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "achievements",
		Short: "List achievements and unlock progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			ctx := context.Background()
			defs, err := app.AchievementCLI.List(ctx)
			if err != nil {
				return err
			}
			snapshot, err := app.RewardsCLI.Snapshot(ctx)
			if err != nil {
				return err
			}
			states := make(map[string]struct {
				unlocked bool
				progress int
			}, len(snapshot.Achievements))
			for _, s := range snapshot.Achievements {
				states[s.ID] = struct {
					unlocked bool
					progress int
				}{s.Unlocked, s.ProgressCurrent}
			}
			for _, d := range defs {
				state := states[d.ID]
				marker := " "
				if state.unlocked {
					marker = "x"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s (%s) %d/%d %s\n", marker, d.Name, d.Rarity, min(state.progress, d.Target), d.Target, d.Description)
			}
			return nil
		},
	}
}

func newShopCmd(dataPath *string, verbose *bool) *cobra.Command {
	shop := &cobra.Command{Use: "shop", Short: "Cosmetic shop commands"}

	shop.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List shop items with prices and unlock state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			state, err := app.ShopCLI.GameState(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "current house: %s\n", state.CurrentHouse)
			items, err := app.ShopCLI.ListItems(context.Background())
			if err != nil {
				return err
			}
			for _, item := range items {
				status := fmt.Sprintf("%d coins", item.Price)
				switch {
				case item.Owned:
					status = "owned"
				case !item.Unlocked:
					status = "locked: " + item.RequirementText
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%s\n", item.ID, item.Category, item.Name, status)
			}
			return nil
		},
	})

	shop.AddCommand(&cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item with earned coins",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			out, err := app.ShopCLI.Purchase(context.Background(), strings.TrimSpace(args[0]))
			if err != nil {
				return err
			}
			if !out.Purchased {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "not enough coins for %s (%d needed, %d left)\n", out.ItemID, out.Price, out.CoinsLeft)
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bought %s for %d coins, %d left\n", out.ItemID, out.Price, out.CoinsLeft)
			return nil
		},
	})

	return shop
}

func newHistoryCmd(dataPath *string, verbose *bool) *cobra.Command {
	var limit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show recent session history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			entries, err := app.RewardsCLI.History(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions yet")
				return nil
			}
			for _, e := range entries {
				outcome := "failed"
				if e.Completed {
					outcome = "completed"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t+%d coins\n",
					e.EndedAt.Format(time.RFC3339), outcome, formatDuration(e.ElapsedSeconds), e.CoinsAwarded)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "entries to show")
	return history
}

func newResetCmd(dataPath *string, verbose *bool) *cobra.Command {
	var confirmed bool
	reset := &cobra.Command{
		Use:   "reset",
		Short: "Wipe coins, streak, achievements and history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to reset without --yes")
			}
			app, err := loadApp(*dataPath, *verbose)
			if err != nil {
				return err
			}
			if err := app.RewardsCLI.ResetAll(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "progress reset")
			return nil
		},
	}
	reset.Flags().BoolVar(&confirmed, "yes", false, "confirm the wipe")
	return reset
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDuration(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Hour {
		return fmt.Sprintf("%dh%02dm", int(d.Hours()), int(d.Minutes())%60)
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}
