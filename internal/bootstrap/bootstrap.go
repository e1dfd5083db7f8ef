package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	achievementinadapter "focusforge/internal/modules/achievement/adapter/in"
	achievementoutadapter "focusforge/internal/modules/achievement/adapter/out"
	achievementservice "focusforge/internal/modules/achievement/service"
	achievementusecase "focusforge/internal/modules/achievement/usecase"
	rewardsinadapter "focusforge/internal/modules/rewards/adapter/in"
	rewardsoutadapter "focusforge/internal/modules/rewards/adapter/out"
	rewardsservice "focusforge/internal/modules/rewards/service"
	rewardsusecase "focusforge/internal/modules/rewards/usecase"
	sessioninadapter "focusforge/internal/modules/session/adapter/in"
	sessionoutadapter "focusforge/internal/modules/session/adapter/out"
	sessionservice "focusforge/internal/modules/session/service"
	sessionusecase "focusforge/internal/modules/session/usecase"
	shopinadapter "focusforge/internal/modules/shop/adapter/in"
	shopoutadapter "focusforge/internal/modules/shop/adapter/out"
	shopservice "focusforge/internal/modules/shop/service"
	shopusecase "focusforge/internal/modules/shop/usecase"
	"focusforge/internal/platform/clock"
	"focusforge/internal/platform/config"
	"focusforge/internal/platform/id"
	uiapp "focusforge/internal/ui/app"
	uistate "focusforge/internal/ui/state"
)

type App struct {
	SessionCLI     sessioninadapter.CLIHandler
	RewardsCLI     rewardsinadapter.CLIHandler
	AchievementCLI achievementinadapter.CLIHandler
	ShopCLI        shopinadapter.CLIHandler
	Settings       *uistate.SettingsStore
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	achievementUC := achievementusecase.NewInteractor(
		achievementservice.NewAchievementService(clk, achievementoutadapter.NewEmbeddedCatalogStore()),
	)

	historyProjector, err := rewardsoutadapter.NewSQLiteHistoryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new history projector: %w", err)
	}
	rewardsUC := rewardsusecase.NewInteractor(rewardsservice.NewLedgerService(
		clk,
		ids,
		rewardsoutadapter.NewFileSnapshotStore(cfg.DataPath),
		historyProjector,
		achievementUC,
	))

	sessionUC := sessionusecase.NewInteractor(sessionservice.NewSessionService(
		clk,
		ids,
		sessionoutadapter.NewSystemTickerFactory(),
		sessionoutadapter.NewRewardsRecorder(rewardsUC),
	))

	shopUC := shopusecase.NewInteractor(
		shopservice.NewShopService(shopoutadapter.NewFileGameStateStore(cfg.DataPath)),
		rewardsUC,
	)

	return &App{
		SessionCLI:     sessioninadapter.NewCLIHandler(sessionUC),
		RewardsCLI:     rewardsinadapter.NewCLIHandler(rewardsUC),
		AchievementCLI: achievementinadapter.NewCLIHandler(achievementUC),
		ShopCLI:        shopinadapter.NewCLIHandler(shopUC),
		Settings:       uistate.NewSettingsStore(cfg.DataPath),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.SessionCLI, app.RewardsCLI, app.AchievementCLI, app.ShopCLI, app.Settings)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
