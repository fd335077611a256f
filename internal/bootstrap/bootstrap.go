package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	burnoutinadapter "technova/internal/modules/burnout/adapter/in"
	burnoutservice "technova/internal/modules/burnout/service"
	burnoutusecase "technova/internal/modules/burnout/usecase"
	careerinadapter "technova/internal/modules/career/adapter/in"
	careeroutadapter "technova/internal/modules/career/adapter/out"
	careerdomain "technova/internal/modules/career/domain"
	careerservice "technova/internal/modules/career/service"
	careerusecase "technova/internal/modules/career/usecase"
	promptinadapter "technova/internal/modules/prompt/adapter/in"
	promptservice "technova/internal/modules/prompt/service"
	promptusecase "technova/internal/modules/prompt/usecase"
	"technova/internal/platform/clock"
	"technova/internal/platform/config"
	apperrors "technova/internal/platform/errors"
	"technova/internal/platform/id"
	uiapp "technova/internal/ui/app"
)

type App struct {
	CareerCLI  careerinadapter.CLIHandler
	BurnoutCLI burnoutinadapter.CLIHandler
	PromptCLI  promptinadapter.CLIHandler
}

func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	clk := clock.SystemClock{}
	ids := id.UUID{}

	if cfg.Simulations > careerdomain.MaxSimulations {
		return nil, fmt.Errorf("simulations must be <= %d, got %d: %w", careerdomain.MaxSimulations, cfg.Simulations, apperrors.ErrInvalidConfig)
	}
	profiles, err := careeroutadapter.NewYAMLTrackSource(cfg.TracksFile).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load tracks: %w", err)
	}
	catalog, err := careerdomain.NewCatalog(profiles, cfg.DefaultTrack)
	if err != nil {
		return nil, fmt.Errorf("build track catalog: %w", err)
	}
	careerUC := careerusecase.NewInteractor(
		careerservice.NewSimulatorService(catalog, careeroutadapter.NewGaussianSamplerSource(cfg.Seed)),
		ids,
		logger.With("module", "career"),
		cfg.Simulations,
	)

	burnoutUC := burnoutusecase.NewInteractor(
		burnoutservice.NewDetectorService(),
		clk,
		ids,
		logger.With("module", "burnout"),
	)

	promptUC := promptusecase.NewInteractor(
		promptservice.NewEvaluatorService(),
		ids,
		logger.With("module", "prompt"),
	)

	logger.Debug("bootstrap complete", "tracks", len(profiles), "default_track", catalog.DefaultName(), "seeded", cfg.Seed != 0)

	return &App{
		CareerCLI:  careerinadapter.NewCLIHandler(careerUC),
		BurnoutCLI: burnoutinadapter.NewCLIHandler(burnoutUC),
		PromptCLI:  promptinadapter.NewCLIHandler(promptUC),
	}, nil
}

// RunTUI starts the dashboard. activityLogPath is optional.
func RunTUI(app *App, activityLogPath string) error {
	model := uiapp.NewModel(app.CareerCLI, app.BurnoutCLI, app.PromptCLI, activityLogPath)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
