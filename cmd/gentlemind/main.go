package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"gentlemind/internal/bootstrap"
	calendardto "gentlemind/internal/modules/calendar/dto"
	"gentlemind/internal/platform/config"
	"gentlemind/internal/platform/i18n"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type rootOptions struct {
	dataDir    string
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "gentlemind",
		Short:         "Mood check-in and guided meditation in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", defaultDataDir(), "directory holding config, history and logs")
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "explicit config file (default <data-dir>/config.yaml)")

	root.AddCommand(newTUICmd(opts))
	root.AddCommand(newLogCmd(opts))
	root.AddCommand(newStatsCmd(opts))
	root.AddCommand(newLangCmd(opts))
	root.AddCommand(newMoodsCmd(opts))
	return root
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gentlemind")
	}
	return ".gentlemind"
}

func loadApp(ctx context.Context, opts *rootOptions) (*bootstrap.App, error) {
	cfg, err := config.Load(opts.dataDir, opts.configFile)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(ctx, cfg)
}

func newTUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive check-in and meditation flow",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(app)
		},
	}
}

func newLogCmd(opts *rootOptions) *cobra.Command {
	log := &cobra.Command{Use: "log", Short: "Meditation history"}

	log.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List completed sessions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			records, err := app.JournalCLI.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range records {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%.2f min\t%s\n", r.ID, r.Date.Format("2006-01-02 15:04"), r.DurationMinutes, r.MoodBefore)
			}
			return w.Flush()
		},
	})

	var format string
	export := &cobra.Command{
		Use:   "export --format <json|yaml|markdown>",
		Short: "Write the session history to stdout",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.JournalCLI.Export(cmd.Context(), format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "exported %d sessions as %s\n", out.Count, out.Format)
			return nil
		},
	}
	export.Flags().StringVar(&format, "format", "json", "output format: json, yaml or markdown")

	var importFormat string
	importCmd := &cobra.Command{
		Use:   "import --format <json|yaml|markdown> <file>",
		Short: "Add sessions from an earlier export, skipping ones already logged",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.JournalCLI.Import(cmd.Context(), importFormat, f)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "imported %d of %d sessions (%d skipped)\n", out.Added, out.Read, out.Skipped)
			return nil
		},
	}
	importCmd.Flags().StringVar(&importFormat, "format", "json", "input format: json, yaml or markdown")

	log.AddCommand(export)
	log.AddCommand(importCmd)
	return log
}

func newStatsCmd(opts *rootOptions) *cobra.Command {
	var year, month int
	stats := &cobra.Command{
		Use:   "stats [--year <yyyy> --month <1-12>]",
		Short: "Show the mood calendar and totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			out, err := app.CalendarCLI.Month(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			trend, err := app.CalendarCLI.Trend(cmd.Context(), 7)
			if err != nil {
				return err
			}
			lang := i18n.Language(app.PreferenceCLI.Language(cmd.Context()).Code)
			printMonth(cmd, lang, out)
			printTrend(cmd, lang, trend)
			return nil
		},
	}
	stats.Flags().IntVar(&year, "year", 0, "calendar year (default current)")
	stats.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (default current)")
	return stats
}

func printMonth(cmd *cobra.Command, lang i18n.Language, out calendardto.MonthOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s %d\n", i18n.MonthName(lang, out.Month), out.Year)
	_, _ = fmt.Fprintf(w, "%s: %.2f %s   %s: %d %s\n\n",
		i18n.T(lang, "totalTime"), out.TotalMinutes, i18n.T(lang, "mins"),
		i18n.T(lang, "totalSessions"), out.TotalSessions, i18n.T(lang, "times"))

	names := i18n.Weekdays(lang)
	cells := make([]string, 0, 7)
	for _, n := range names {
		cells = append(cells, fmt.Sprintf("%4s", n))
	}
	_, _ = fmt.Fprintln(w, strings.Join(cells, ""))

	cells = cells[:0]
	for i := 0; i < out.Leading; i++ {
		cells = append(cells, "    ")
	}
	for _, d := range out.Days {
		mark := " "
		if d.Sessions > 0 {
			mark = "*"
		}
		cells = append(cells, fmt.Sprintf("%3d%s", d.Day, mark))
		if len(cells) == 7 {
			_, _ = fmt.Fprintln(w, strings.Join(cells, ""))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		_, _ = fmt.Fprintln(w, strings.Join(cells, ""))
	}

	_, _ = fmt.Fprintln(w)
	for _, d := range out.Days {
		if d.Sessions > 0 {
			_, _ = fmt.Fprintf(w, "%s  %6.2f %s  %d %s  %s\n", d.Date, d.TotalMinutes, i18n.T(lang, "mins"), d.Sessions, i18n.T(lang, "times"), d.LastMood)
		}
	}
}

func printTrend(cmd *cobra.Command, lang i18n.Language, trend calendardto.TrendOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "\n%s\n", i18n.T(lang, "last7Days"))
	for _, d := range trend.Days {
		_, _ = fmt.Fprintf(w, "%s  %6.2f %s\n", d.Date, d.TotalMinutes, i18n.T(lang, "mins"))
	}
}

func newLangCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [th|en]",
		Short: "Show or set the interface language",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if len(args) == 0 {
				out := app.PreferenceCLI.Language(cmd.Context())
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", out.Code, out.Tag)
				return nil
			}
			out, err := app.PreferenceCLI.SetLanguage(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "language set: %s (%s)\n", out.Code, out.Tag)
			return nil
		},
	}
}

func newMoodsCmd(opts *rootOptions) *cobra.Command {
	var lang string
	moods := &cobra.Command{
		Use:   "moods",
		Short: "List the check-in moods",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer app.Close()
			if lang == "" {
				lang = app.PreferenceCLI.Language(cmd.Context()).Code
			}
			list, err := app.MoodCLI.List(cmd.Context(), lang)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range list {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Emoji, m.ID, m.Label, m.Description)
			}
			return w.Flush()
		},
	}
	moods.Flags().StringVar(&lang, "lang", "", "label language th|en (default saved preference)")
	return moods
}
