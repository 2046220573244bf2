package client

import (
	"context"
	"errors"

	"github.com/studysesh/study-sesh/internal/logger"
	"github.com/studysesh/study-sesh/internal/service"
	"github.com/studysesh/study-sesh/internal/tui"
)

// App ties the TUI flows together: the login flow runs until the user
// authenticates, then the main loop takes over. Logging out drops the session
// token and restarts the cycle.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, log *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: log}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	for {
		if err := a.tui.LoginFlow(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		logout, err := a.tui.MainLoop(ctx)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Msg("user logged out")
		a.services.AuthService.Logout()
		a.services.AssistantService.Reset()
	}
}
