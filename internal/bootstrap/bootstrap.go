package bootstrap

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	cataloginadapter "grindlock/internal/modules/catalog/adapter/in"
	catalogoutadapter "grindlock/internal/modules/catalog/adapter/out"
	catalogservice "grindlock/internal/modules/catalog/service"
	catalogusecase "grindlock/internal/modules/catalog/usecase"
	enforceinadapter "grindlock/internal/modules/enforce/adapter/in"
	enforceoutadapter "grindlock/internal/modules/enforce/adapter/out"
	enforcedomain "grindlock/internal/modules/enforce/domain"
	enforcein "grindlock/internal/modules/enforce/port/in"
	enforceservice "grindlock/internal/modules/enforce/service"
	enforceusecase "grindlock/internal/modules/enforce/usecase"
	historyinadapter "grindlock/internal/modules/history/adapter/in"
	historyoutadapter "grindlock/internal/modules/history/adapter/out"
	historyservice "grindlock/internal/modules/history/service"
	historyusecase "grindlock/internal/modules/history/usecase"
	notifyoutadapter "grindlock/internal/modules/notify/adapter/out"
	notifyout "grindlock/internal/modules/notify/port/out"
	notifyservice "grindlock/internal/modules/notify/service"
	notifyusecase "grindlock/internal/modules/notify/usecase"
	progressoutadapter "grindlock/internal/modules/progress/adapter/out"
	progressin "grindlock/internal/modules/progress/port/in"
	progressservice "grindlock/internal/modules/progress/service"
	progressusecase "grindlock/internal/modules/progress/usecase"
	"grindlock/internal/platform/clock"
	"grindlock/internal/platform/config"
	"grindlock/internal/platform/logging"
	uiapp "grindlock/internal/ui/app"
)

type App struct {
	Config config.Config

	CatalogCLI cataloginadapter.CLIHandler
	EnforceCLI enforceinadapter.CLIHandler
	HistoryCLI historyinadapter.CLIHandler

	Progress progressin.Usecase

	enforceUC enforcein.Usecase
	clock     clock.Clock
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	logger := logging.New("grindlock")

	catalogStore := catalogoutadapter.NewYAMLCatalogStore(cfg.CatalogPath)
	catalogSvc := catalogservice.NewCatalogService(catalogStore)
	catalogUC := catalogusecase.NewInteractor(catalogSvc, cfg.LeetCode.BaseURL, cfg.NeetCodeBaseURL)

	credentials := progressoutadapter.NewKeyringCredentials()
	leetcode := progressoutadapter.NewLeetCodeClient(cfg.LeetCode.BaseURL, cfg.LeetCode.Username, credentials)
	progressSvc := progressservice.NewProgressService(leetcode, clk)
	progressUC := progressusecase.NewInteractor(progressSvc, catalogUC, credentials)

	checkLog, err := historyoutadapter.NewSQLiteCheckLog(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new check log: %w", err)
	}
	historyUC := historyusecase.NewInteractor(historyservice.NewHistoryService(checkLog))

	manifests, err := notifyoutadapter.NewFileManifestStore(cfg.PluginsPath).Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load notifier plugins: %w", err)
	}
	sinks := []notifyout.Sink{notifyoutadapter.NewLogSink(logger)}
	for _, manifest := range manifests {
		if !manifest.Enabled {
			continue
		}
		sinks = append(sinks, notifyoutadapter.NewPluginSink(manifest))
	}
	notifyUC := notifyusecase.NewInteractor(notifyservice.NewNotifyService(sinks...))

	blocker := enforceoutadapter.NewHostsBlocker(cfg.HostsPath)
	controller := enforceservice.NewBlockController(blocker, cfg.Domains)
	engine := enforceservice.NewEngine(
		enforceoutadapter.NewProgressSourceAdapter(progressUC),
		enforceoutadapter.NewCatalogSourceAdapter(catalogUC),
		controller,
		enforcedomain.Thresholds{
			Daily:            cfg.Targets.Daily,
			MorningCarryover: cfg.Targets.MorningCarryover,
			MiddayMicro:      cfg.Targets.MiddayMicro,
		},
	)
	enforceUC := enforceusecase.NewInteractor(
		engine,
		controller,
		enforceoutadapter.NewNotifyAdapter(notifyUC),
		enforceoutadapter.NewHistoryRecorderAdapter(historyUC),
		enforceoutadapter.NewBrowserLauncher(),
		clk,
		logger,
	)

	return &App{
		Config:     cfg,
		CatalogCLI: cataloginadapter.NewCLIHandler(catalogUC),
		EnforceCLI: enforceinadapter.NewCLIHandler(enforceUC),
		HistoryCLI: historyinadapter.NewCLIHandler(historyUC),
		Progress:   progressUC,
		enforceUC:  enforceUC,
		clock:      clk,
	}, nil
}

// RunDaemon starts the scheduler loop, logging to <home>/log as well as
// stderr, and blocks until ctx is cancelled.
func RunDaemon(ctx context.Context, app *App) error {
	logger, closeLog, err := logging.NewFile(app.Config.LogDir, "daemon")
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	daemon := enforceinadapter.NewDaemon(app.enforceUC, app.Config.Schedule, app.Config.LockPath, app.clock, logger)
	return daemon.Run(ctx)
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.EnforceCLI, app.HistoryCLI, app.CatalogCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
