package app

import (
	"gradeboard/internal/config"
	"gradeboard/internal/gui"
	"gradeboard/internal/logger"
	"gradeboard/internal/storage"
	"gradeboard/internal/visualizer"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName    = "GradeBoard"
	AppID      = "com.gradeboard.desk"
	AppVersion = "1.0.0"

	WindowWidth  float32 = 1000
	WindowHeight float32 = 650
)

type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger

	store      *storage.Store
	board      *visualizer.Board
	animator   *visualizer.Animator
	guiManager *gui.Manager
	handlers   *Handlers
	lifecycle  *Lifecycle
}

func NewApplication(cfg config.Config, log logger.Logger) (*Application, error) {
	fyneApp := fyneapp.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"database": cfg.DatabasePath,
	})

	store, err := storage.Open(cfg.DatabasePath, log)
	if err != nil {
		return nil, err
	}

	board := visualizer.NewBoard(gui.BoardWidth, gui.BoardHeight)
	animator := visualizer.NewAnimator(board, log)
	guiManager := gui.NewManager(window, board.Container(), float64(cfg.Speed), log)
	animator.SetSpeedSource(guiManager.Speed)

	lifecycle := NewLifecycle(animator, guiManager, store, log)
	handlers := NewHandlers(store, guiManager, board, animator, log)
	handlers.Bind()

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		store:      store,
		board:      board,
		animator:   animator,
		guiManager: guiManager,
		handlers:   handlers,
		lifecycle:  lifecycle,
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) Run() error {
	a.window.SetCloseIntercept(func() {
		a.guiManager.ShowConfirm("Quit", "Do you want to quit?", func(confirmed bool) {
			if !confirmed {
				return
			}
			a.logger.Info("Application", "shutdown requested", nil)
			a.lifecycle.Shutdown()
			a.window.Close()
		})
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.handlers.RefreshAll()
	a.window.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	return nil
}

// Shutdown tears the application down and leaves the event loop, used
// by the signal handler path.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
	fyne.Do(func() {
		a.fyneApp.Quit()
	})
}
