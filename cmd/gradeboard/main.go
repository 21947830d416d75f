package main

import (
	"log"

	"gradeboard/internal/app"
	"gradeboard/internal/config"
	"gradeboard/internal/logger"
	"gradeboard/internal/shutdown"
)

func main() {
	cfg := config.Load()

	level := logger.ParseLevel(cfg.LogLevel)
	var appLogger logger.Logger
	if cfg.JSONLogs {
		appLogger = logger.NewJSONLogger(level)
	} else {
		appLogger = logger.NewConsoleLogger(level)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("application initialization failed: %v", err)
	}

	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen()

	if err := application.Run(); err != nil {
		log.Fatalf("application execution failed: %v", err)
	}

	appLogger.Info("Main", "application terminated", nil)
}
