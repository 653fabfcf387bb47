package app

import (
	"context"
	"fmt"
	"net/http"

	"rt-portal-go/internal/config"
	bulletindomain "rt-portal-go/internal/domain/bulletin"
	cashbookdomain "rt-portal-go/internal/domain/cashbook"
	complaintsdomain "rt-portal-go/internal/domain/complaints"
	"rt-portal-go/internal/domain/homepage"
	"rt-portal-go/internal/domain/letterhead"
	profiledomain "rt-portal-go/internal/domain/profile"
	residentsdomain "rt-portal-go/internal/domain/residents"
	"rt-portal-go/internal/repository/inmemory"
	"rt-portal-go/internal/seed"
	"rt-portal-go/internal/transport/httpserver"
	"rt-portal-go/internal/transport/httpserver/handler"
	"rt-portal-go/pkg/clock"
	"rt-portal-go/pkg/logger"
	"rt-portal-go/pkg/money"
)

type App struct {
	cfg        config.Config
	log        logger.Logger
	clock      clock.Clock
	services   handler.Services
	httpServer *http.Server
}

func New(ctx context.Context, log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	return NewWithConfig(ctx, cfg, clock.NewSystem(clock.LoadLocation(cfg.Portal.Timezone)), log)
}

// NewWithConfig builds the portal from an explicit config and clock.
func NewWithConfig(ctx context.Context, cfg config.Config, clk clock.Clock, log logger.Logger) (*App, error) {
	log.Info("app: initializing services")
	services := NewServices(clk)

	if cfg.Seed.Enabled {
		log.Info("app: applying seed", "file", cfg.Seed.File)
		data, err := seed.Load(cfg.Seed.File)
		if err != nil {
			return nil, err
		}
		if err := seed.Apply(ctx, data, seed.Targets{
			Profile:    services.Profiles,
			Residents:  services.Residents,
			Complaints: services.Complaints,
			Bulletin:   services.Bulletin,
			Cash:       services.Cash,
		}); err != nil {
			return nil, fmt.Errorf("apply seed: %w", err)
		}
	}

	log.Info("app: initializing router")
	handlers := handler.New(services, money.NewFormatter(cfg.Portal.Locale), clk, log.With("component", "http"))
	router := httpserver.NewRouter(cfg, handlers)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		log:        log,
		clock:      clk,
		services:   services,
		httpServer: srv,
	}, nil
}

// NewServices wires every domain service over empty in-memory storage.
func NewServices(clk clock.Clock) handler.Services {
	profiles := profiledomain.NewService(inmemory.NewProfileRepository(profiledomain.Profile{}))
	bulletin := bulletindomain.NewService(inmemory.NewBulletinRepository())
	cash := cashbookdomain.NewService(inmemory.NewCashbookRepository())

	return handler.Services{
		Profiles:   profiles,
		Residents:  residentsdomain.NewService(inmemory.NewResidentsRepository()),
		Complaints: complaintsdomain.NewService(inmemory.NewComplaintsRepository(), clk),
		Bulletin:   bulletin,
		Cash:       cash,
		Letters:    letterhead.NewGenerator(clk),
		Homepage:   homepage.NewService(profiles, bulletin, cash),
	}
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) Clock() clock.Clock {
	return a.clock
}

func (a *App) Services() handler.Services {
	return a.services
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}
