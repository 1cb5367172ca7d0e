// Command checkme is the composition root for the checklist store: it
// owns the database lifecycle and exposes the maintenance surface
// (browse, inspect, destructive reset) outside the mobile app.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rmaia/checkme/internal/config"
	"github.com/rmaia/checkme/internal/format"
	"github.com/rmaia/checkme/internal/model"
	"github.com/rmaia/checkme/internal/store"
	"github.com/rmaia/checkme/internal/theme"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	store  store.Store
	status string
	search string
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}
	var configPath string

	root := &cobra.Command{
		Use:           "checkme",
		Short:         "Inspect and maintain the local checklist database",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level, err := logrus.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = logrus.InfoLevel
			}
			a.log.SetLevel(level)

			if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0o755); err != nil {
				return fmt.Errorf("creating data directory: %w", err)
			}

			s, err := store.NewSQLiteStore(cfg.DatabasePath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			a.store = s
			a.log.WithField("path", cfg.DatabasePath).Debug("database opened")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.store != nil {
				return a.store.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigPath(), "config file")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newShowCmd(a))
	root.AddCommand(newResetCmd(a))

	return root
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List checklists with their progress and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.store.ListChecklists(cmd.Context(), a.status, a.search)
			if err != nil {
				a.log.WithError(err).Error("listing checklists failed")
				return err
			}

			if len(summaries) == 0 {
				fmt.Println("nenhuma checklist encontrada")
				return nil
			}

			for _, summary := range summaries {
				printSummary(summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&a.status, "status", model.StatusOpen, "open or completed")
	cmd.Flags().StringVar(&a.search, "search", "", "substring match on title")
	return cmd
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one checklist with all of its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid checklist id %q", args[0])
			}

			detail, err := a.store.GetChecklistWithItems(cmd.Context(), id)
			if err != nil {
				a.log.WithError(err).WithField("id", id).Error("loading checklist failed")
				return err
			}
			if detail == nil {
				return fmt.Errorf("checklist %d not found", id)
			}

			printSummary(detail.Summary)
			for _, item := range detail.Items {
				printItem(item)
			}
			return nil
		},
	}
}

func newResetCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop and recreate all tables (irreversible)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("reset destroys all data; pass --yes to confirm")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			if err := a.store.Reset(ctx); err != nil {
				a.log.WithError(err).Error("reset failed")
				return err
			}
			a.log.Info("database reset complete")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the destructive reset")
	return cmd
}

func printSummary(summary model.Summary) {
	header := theme.HeaderStyle.
		Foreground(lipgloss.Color(theme.ReadableTextColor(summary.Color))).
		Background(lipgloss.Color(summary.Color))

	line := fmt.Sprintf("#%d %s  %s", summary.ID, summary.Title,
		format.FormatProgress(summary.CompletedItems, summary.TotalItems))
	fmt.Println(header.Render(line))

	fmt.Printf("  %s de %s\n",
		theme.AmountStyle.Render(format.FormatCurrency(summary.CompletedAmount)),
		theme.AmountStyle.Render(format.FormatCurrency(summary.TotalAmount)))

	if summary.ScheduledFor != nil {
		now := time.Now().UnixMilli()
		state := format.ClassifySchedule(now, *summary.ScheduledFor)
		label := format.ScheduleLabel(now, *summary.ScheduledFor)
		fmt.Printf("  %s (%s)\n",
			theme.ScheduleStyle(state).Render(label),
			format.FormatFullDate(*summary.ScheduledFor))
	}
}

func formatItemLine(item model.Item) string {
	check := "[ ]"
	if item.Done {
		check = "[x]"
	}

	line := fmt.Sprintf("%s %s", check, item.Name)
	if item.Price != nil {
		line += fmt.Sprintf("  %d x %s", item.Quantity, format.FormatCurrency(*item.Price))
	}

	if item.Done {
		return theme.DoneStyle.Render(line)
	}
	return line
}

func printItem(item model.Item) {
	fmt.Println("  " + formatItemLine(item))
}
