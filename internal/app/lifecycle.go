package app

import (
	"sync"

	"gradeboard/internal/gui"
	"gradeboard/internal/logger"
	"gradeboard/internal/storage"
	"gradeboard/internal/visualizer"
)

// Lifecycle tears components down in reverse dependency order: the
// animation worker first, the GUI next, the database last. Shutdown
// may be reached from both the close intercept and the signal
// handler; the sequence runs once.
type Lifecycle struct {
	animator     *visualizer.Animator
	guiManager   *gui.Manager
	store        *storage.Store
	logger       logger.Logger
	shutdownOnce sync.Once
}

func NewLifecycle(animator *visualizer.Animator, gm *gui.Manager, store *storage.Store, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		animator:   animator,
		guiManager: gm,
		store:      store,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.shutdownOnce.Do(l.shutdown)
}

func (l *Lifecycle) shutdown() {
	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	if l.animator != nil {
		l.animator.Shutdown()
		l.logger.Debug("Lifecycle", "animator shutdown completed", nil)
	}

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	if l.store != nil {
		l.store.Shutdown()
		l.logger.Debug("Lifecycle", "store shutdown completed", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
