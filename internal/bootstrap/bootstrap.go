package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	calendarinadapter "gentlemind/internal/modules/calendar/adapter/in"
	calendarusecase "gentlemind/internal/modules/calendar/usecase"
	journalinadapter "gentlemind/internal/modules/journal/adapter/in"
	journaloutadapter "gentlemind/internal/modules/journal/adapter/out"
	journaloutport "gentlemind/internal/modules/journal/port/out"
	journalservice "gentlemind/internal/modules/journal/service"
	journalusecase "gentlemind/internal/modules/journal/usecase"
	meditationinadapter "gentlemind/internal/modules/meditation/adapter/in"
	meditationoutadapter "gentlemind/internal/modules/meditation/adapter/out"
	meditationout "gentlemind/internal/modules/meditation/port/out"
	meditationusecase "gentlemind/internal/modules/meditation/usecase"
	moodinadapter "gentlemind/internal/modules/mood/adapter/in"
	moodusecase "gentlemind/internal/modules/mood/usecase"
	preferenceinadapter "gentlemind/internal/modules/preference/adapter/in"
	preferenceservice "gentlemind/internal/modules/preference/service"
	preferenceusecase "gentlemind/internal/modules/preference/usecase"
	wisdomoutadapter "gentlemind/internal/modules/wisdom/adapter/out"
	wisdomservice "gentlemind/internal/modules/wisdom/service"
	"gentlemind/internal/platform/clock"
	"gentlemind/internal/platform/config"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/platform/id"
	"gentlemind/internal/platform/kv"
	"gentlemind/internal/platform/logging"
	uiapp "gentlemind/internal/ui/app"
)

type App struct {
	JournalCLI    journalinadapter.CLIHandler
	CalendarCLI   calendarinadapter.CLIHandler
	PreferenceCLI preferenceinadapter.CLIHandler
	MoodCLI       moodinadapter.CLIHandler
	MeditationTUI meditationinadapter.TUIHandler

	controller *meditationusecase.Controller
	store      kv.Store
	logger     logging.Logger
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	logger, err := logging.New(logging.Options{Level: cfg.Logger.Level, Dir: cfg.DataDir, File: cfg.Logger.File})
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	loc, err := cfg.Loc()
	if err != nil {
		logger.Close()
		return nil, err
	}
	store, err := openStore(cfg)
	if err != nil {
		logger.Close()
		return nil, err
	}
	clk := clock.SystemClock{}

	sessionLog := journalservice.NewSessionLog(store, logger)
	sessionLog.Load(ctx)
	journalUC := journalusecase.NewInteractor(sessionLog, loc,
		[]journaloutport.Exporter{
			journaloutadapter.JSONExporter{},
			journaloutadapter.YAMLExporter{},
			journaloutadapter.MarkdownExporter{Location: loc},
		},
		[]journaloutport.Importer{
			journaloutadapter.JSONImporter{},
			journaloutadapter.YAMLImporter{},
			journaloutadapter.MarkdownImporter{},
		},
	)

	fallback, err := i18n.ParseLanguage(cfg.Language)
	if err != nil {
		fallback = i18n.Default
	}
	languageSvc := preferenceservice.NewLanguageService(store, logger, fallback)
	languageSvc.Load(ctx)

	gemini := wisdomoutadapter.NewGeminiClient(cfg.Wisdom.APIKey,
		wisdomoutadapter.WithBaseURL(cfg.Wisdom.BaseURL),
		wisdomoutadapter.WithModel(cfg.Wisdom.Model),
	)
	cache := wisdomoutadapter.NewCache(cfg.Wisdom.Cache.Enabled, cfg.Wisdom.Cache.SizeMB, cfg.Wisdom.Cache.TTL, logger)
	wisdomSvc := wisdomservice.NewWisdomService(gemini, cache, logger, cfg.Wisdom.Timeout)

	var narrator meditationout.Narrator = meditationoutadapter.NoopNarrator{}
	if cfg.Narrator.Enabled {
		narrator = meditationoutadapter.NewExecNarrator(cfg.Narrator.Command, cfg.Narrator.Rate, logger)
	}

	controller := meditationusecase.NewController(meditationusecase.Deps{
		Log:         sessionLog,
		Wisdom:      wisdomSvc,
		Narrator:    narrator,
		Preferences: languageSvc,
		Clock:       clk,
		Tickers:     clock.SystemTickers{},
		RecordIDs:   id.NewTimestamp(clk, id.After(sessionLog.LatestID())),
		Tokens:      id.UUID{},
		Logger:      logger,
	})
	calendarUC := calendarusecase.NewInteractor(sessionLog, clk, loc)

	logger.Infof(logging.TypeApp, "Started with %s storage in %s, wisdom configured: %t", cfg.Storage.Driver, cfg.DataDir, gemini.Configured())

	return &App{
		JournalCLI:    journalinadapter.NewCLIHandler(journalUC),
		CalendarCLI:   calendarinadapter.NewCLIHandler(calendarUC),
		PreferenceCLI: preferenceinadapter.NewCLIHandler(preferenceusecase.NewInteractor(languageSvc)),
		MoodCLI:       moodinadapter.NewCLIHandler(moodusecase.NewInteractor()),
		MeditationTUI: meditationinadapter.NewTUIHandler(controller),
		controller:    controller,
		store:         store,
		logger:        logger,
	}, nil
}

func openStore(cfg config.Config) (kv.Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverFile:
		store, err := kv.NewFileStore(filepath.Join(cfg.DataDir, "kv"))
		if err != nil {
			return nil, fmt.Errorf("new file store: %w", err)
		}
		return store, nil
	default:
		store, err := kv.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("new sqlite store: %w", err)
		}
		return store, nil
	}
}

// Close stops the session flow, then releases storage and the log file.
func (a *App) Close() {
	a.controller.Close()
	if err := a.store.Close(); err != nil {
		a.logger.Warnf(logging.TypeStorage, "Closing store failed: %s", err)
	}
	a.logger.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.MeditationTUI, app.MoodCLI, app.CalendarCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
