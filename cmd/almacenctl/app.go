package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/jhoicas/inventario-console/internal/application/auth"
	"github.com/jhoicas/inventario-console/internal/application/guard"
	"github.com/jhoicas/inventario-console/internal/application/session"
	"github.com/jhoicas/inventario-console/internal/application/usecase"
	"github.com/jhoicas/inventario-console/internal/domain"
	"github.com/jhoicas/inventario-console/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/inventario-console/internal/infrastructure/pdf"
	"github.com/jhoicas/inventario-console/internal/infrastructure/storage"
	"github.com/jhoicas/inventario-console/pkg/config"
	"github.com/jhoicas/inventario-console/pkg/logger"
)

// Errores del guard local.
var (
	errLoginRequired = errors.New("no hay sesión activa: ejecute 'almacenctl login'")
	errAdminRequired = errors.New("esta operación requiere rol ADMIN")
)

// app dependencias compartidas por los comandos.
type app struct {
	out    io.Writer
	json   bool
	log    *logger.Logger
	client *backend.Client
	store  *session.Store

	auth       *auth.AuthUseCase
	warehouses *usecase.WarehouseUseCase
	products   *usecase.ProductUseCase
	stock      *usecase.StockUseCase
	shipments  *usecase.ShipmentUseCase
	users      *usecase.UserUseCase
}

func (a *app) init(c *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if v := c.String("backend"); v != "" {
		cfg.Backend.URL = v
	}
	if v := c.String("profile"); v != "" {
		cfg.CLI.Profile = v
	}
	if v := c.String("session-file"); v != "" {
		cfg.Session.File = v
	}

	level := "warn"
	if c.Bool("verbose") {
		level = "debug"
	}
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: level, Out: os.Stderr}).
		Component("almacenctl").
		Client(cfg.CLI.Profile)
	if a.out == nil {
		a.out = os.Stdout
	}
	a.json = c.Bool("json")

	a.client = backend.NewClient(cfg.Backend.URL, backend.Options{
		Timeout: cfg.Backend.Timeout,
		RPS:     cfg.Backend.RPS,
		Burst:   cfg.Backend.Burst,
	})
	a.store = session.NewStore(storage.NewFile(cfg.Session.File), cfg.CLI.Profile)
	a.auth = auth.NewAuthUseCase(a.client)
	a.warehouses = usecase.NewWarehouseUseCase(a.client)
	a.products = usecase.NewProductUseCase(a.client)
	a.stock = usecase.NewStockUseCase(a.client, infrapdf.NewMarotoStockReport())
	a.shipments = usecase.NewShipmentUseCase(a.client)
	a.users = usecase.NewUserUseCase(a.client)

	a.log.Debug().Str("backend", cfg.Backend.URL).Str("profile", cfg.CLI.Profile).Str("file", cfg.Session.File).Msg("cliente listo")
	return nil
}

// require aplica el guard local y devuelve el token de la sesión.
func (a *app) require(ctx context.Context, req guard.Requirement) (string, error) {
	d := guard.Check(ctx, a.store, req)
	if !d.Allow {
		if d.Redirect == guard.LoginPath {
			return "", errLoginRequired
		}
		return "", errAdminRequired
	}
	sess := a.store.Current(ctx)
	if sess == nil {
		return "", errLoginRequired
	}
	return sess.Token, nil
}

// fail traduce el error a un mensaje para el usuario.
func (a *app) fail(err error, fallback string) error {
	a.log.Debug().Err(err).Msg("operación fallida")
	if msg := domain.UserMessage(err, ""); msg != "" {
		return errors.New(msg)
	}
	return fmt.Errorf("%s: %w", fallback, err)
}
