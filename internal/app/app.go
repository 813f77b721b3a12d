// Package app is the composition root. It owns the storage gateway, every
// repository, the in-memory state and the services built on them.
package app

import (
	"context"

	"litepos/internal/cart"
	"litepos/internal/config"
	"litepos/internal/infra"
	"litepos/internal/model"
	"litepos/internal/repository"
	"litepos/internal/service"
	"litepos/internal/state"

	"github.com/rs/zerolog/log"
)

type Repositories struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Products   repository.ProductRepository
	Customers  repository.CustomerRepository
	Orders     repository.OrderRepository
	Payments   repository.PaymentRepository
	Refunds    repository.RefundRepository
	Settings   repository.SettingRepository
	Reports    repository.ReportRepository
}

type Services struct {
	Auth     service.AuthService
	Settings service.SettingsService
	Checkout service.CheckoutService
	Refund   service.RefundService
}

type App struct {
	Config  *config.Config
	Gateway *infra.Gateway

	Repos    Repositories
	Services Services

	Cart     *cart.Cart
	Session  *state.Session
	Filters  *state.Filters
	Settings *state.SettingsCache
}

// New wires the application. No I/O happens until the first storage call.
func New(cfg *config.Config) *App {
	gw := infra.NewGateway(cfg)

	repos := Repositories{
		Users:      repository.NewUserRepository(gw),
		Categories: repository.NewCategoryRepository(gw),
		Products:   repository.NewProductRepository(gw),
		Customers:  repository.NewCustomerRepository(gw),
		Orders:     repository.NewOrderRepository(gw),
		Payments:   repository.NewPaymentRepository(gw),
		Refunds:    repository.NewRefundRepository(gw),
		Settings:   repository.NewSettingRepository(gw),
		Reports:    repository.NewReportRepository(gw),
	}

	a := &App{
		Config:   cfg,
		Gateway:  gw,
		Repos:    repos,
		Cart:     cart.New(),
		Session:  state.NewSession(),
		Filters:  state.NewFilters(),
		Settings: state.NewSettingsCache(),
	}
	a.Services = Services{
		Auth:     service.NewAuthService(repos.Users, a.Session),
		Settings: service.NewSettingsService(repos.Settings, a.Settings),
		Checkout: service.NewCheckoutService(gw, repos.Orders, repos.Payments, repos.Products, a.Cart),
		Refund:   service.NewRefundService(gw, repos.Orders, repos.Refunds, repos.Products),
	}
	return a
}

// Start loads the settings cache, opening the database on the way.
func (a *App) Start(ctx context.Context) error {
	if err := a.Services.Settings.Load(ctx); err != nil {
		return err
	}
	log.Info().Int("settings", len(a.Settings.All())).Msg("settings loaded")
	return nil
}

// BrowseProducts lists the products matching the current filters.
func (a *App) BrowseProducts(ctx context.Context) ([]model.Product, error) {
	return a.Repos.Products.List(ctx, a.Filters.ProductFilter())
}

func (a *App) Close() error {
	return a.Gateway.Close()
}
