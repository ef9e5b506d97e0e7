package main

import (
	"log"
	"runtime"

	"numberfacts/internal/config"
	"numberfacts/internal/controllers"
	"numberfacts/internal/logger"
	"numberfacts/internal/models"
	"numberfacts/internal/services"
	"numberfacts/internal/shutdown"
	"numberfacts/internal/views"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName    = "Number Facts"
	AppID      = "com.numberfacts.app"
	AppVersion = "1.0.0"
)

// Application wires the facts screen together.
type Application struct {
	fyneApp fyne.App
	window  fyne.Window
	logger  logger.Logger
	config  config.Config

	state      *models.FactsState
	service    *services.FactsService
	controller *controllers.FactsController
	view       *views.FactsView

	shutdown *shutdown.Manager
	unbind   func()
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	application := NewApplication(cfg)
	application.Run()
}

// NewApplication builds the app, window, MVC components and lifecycle.
func NewApplication(cfg config.Config) *Application {
	appLogger := logger.New(cfg.Level(), cfg.LogJSON)

	fyneApp := app.NewWithID(AppID)
	fyneApp.SetMetadata(&fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(390, 720))
	window.SetMaster()

	appLogger.Info("Application", "starting", map[string]interface{}{
		"version":    AppVersion,
		"base_url":   cfg.BaseURL,
		"timeout":    cfg.RequestTimeout.String(),
		"go_version": runtime.Version(),
		"log_level":  cfg.Level().String(),
	})

	state := models.NewFactsState()
	service := services.NewFactsService(cfg.BaseURL, nil, cfg.RequestTimeout, appLogger)
	controller := controllers.NewFactsController(state, service, appLogger,
		controllers.WithDispatcher(fyne.DoAndWait),
	)
	view := views.NewFactsView(window)
	controller.SetMainView(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     appLogger,
		config:     cfg,
		state:      state,
		service:    service,
		controller: controller,
		view:       view,
		shutdown:   shutdown.NewManager(appLogger),
	}

	application.unbind = view.Bind(state)
	application.shutdown.Register("view", shutdown.Func(application.unbind))
	application.shutdown.Register("controller", controller)

	application.setupLifecycle()
	return application
}

// setupLifecycle mounts the screen once the app has started and unmounts it
// when the app stops, the window closes or a signal arrives.
func (a *Application) setupLifecycle() {
	a.fyneApp.Lifecycle().SetOnStarted(func() {
		a.logger.Debug("Application", "lifecycle started", nil)
		a.controller.Initialize()
	})

	a.fyneApp.Lifecycle().SetOnStopped(func() {
		a.logger.Debug("Application", "lifecycle stopped", nil)
		go a.shutdown.Shutdown()
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		go a.shutdown.Shutdown()
	})

	a.shutdown.Listen()
	go func() {
		<-a.shutdown.Done()
		fyne.Do(a.fyneApp.Quit)
	}()
}

// Run shows the screen and blocks until the app exits.
func (a *Application) Run() {
	a.logger.Info("Application", "showing facts screen", nil)

	a.view.Show()
	a.fyneApp.Run()

	a.shutdown.Shutdown()
	a.logger.Info("Application", "terminated", nil)
}
