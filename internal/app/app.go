package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/internal/adapter/catalog"
	"github.com/niksmo/storefront/internal/adapter/httphandler"
	"github.com/niksmo/storefront/internal/adapter/kafka"
	"github.com/niksmo/storefront/internal/adapter/memstorage"
	"github.com/niksmo/storefront/internal/adapter/redisx"
	"github.com/niksmo/storefront/internal/adapter/session"
	"github.com/niksmo/storefront/internal/adapter/storage"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/niksmo/storefront/internal/core/service"
	"github.com/niksmo/storefront/internal/core/storefront"
	"github.com/niksmo/storefront/pkg/schema"
	"github.com/niksmo/storefront/pkg/token"
	"github.com/redis/go-redis/v9"
	"github.com/twmb/franz-go/pkg/sr"
)

const orderPlacedSubjectSuffix = "-value"

type App struct {
	ctx context.Context
	cfg config.Config

	sessionStore port.SessionStore
	rdb          *redis.Client
	sqlDB        *storage.SQLDB
	gateway      port.Gateway

	orderEventsPrd *kafka.OrderEventsProducer

	catalog    catalog.Catalog
	service    service.Service
	clients    *httphandler.Clients
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSessionStore()
	app.initGateway()
	app.initOrderEvents()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSessionStore() {
	const op = "App.initSessionStore"
	log := slog.With("op", op)

	addr := app.cfg.Redis.Addr
	if addr == "" {
		app.sessionStore = session.NewMemoryStore()
		log.Info("sessions are kept in memory")
		return
	}

	rdb, err := redisx.New(app.ctx, addr)
	if err != nil {
		app.fallDown(op, err)
	}
	app.rdb = rdb
	app.sessionStore = redisx.NewSessionStore(rdb)
	log.Info("sessions are kept in redis", "addr", addr)
}

// initGateway selects exactly one persistence gateway.
func (app *App) initGateway() {
	const op = "App.initGateway"
	log := slog.With("op", op)

	cfg := app.cfg
	limiter := session.NewLimiter(
		cfg.Session.MaxFailures, cfg.Session.FailureWindow,
	)

	switch {
	case cfg.SQLConfigured():
		sessions := app.sessionManager(cfg.Backend.Key)
		db, err := storage.NewSQLDB(app.ctx, cfg.Backend.URL)
		if err != nil {
			app.fallDown(op, err)
		}
		app.sqlDB = &db
		app.gateway = storage.NewGateway(db, sessions, limiter)
		log.Info("gateway selected", "kind", "sql")

	case cfg.Backend.Local:
		key := cfg.Backend.Key
		if key == "" {
			key = cfg.Session.LocalKey
		}
		app.gateway = memstorage.New(app.sessionManager(key), limiter)
		log.Info("gateway selected", "kind", "local")

	default:
		app.gateway = storage.Unconfigured{}
		log.Warn("backend is not configured, account, order and review calls will fail")
	}
}

func (app *App) sessionManager(key string) session.Manager {
	const op = "App.sessionManager"

	issuer, err := token.NewIssuer(key, app.cfg.Session.TTL)
	if err != nil {
		app.fallDown(op, err)
	}
	return session.NewManager(issuer, app.sessionStore)
}

// initOrderEvents is skipped without seed brokers; orders are still placed.
func (app *App) initOrderEvents() {
	const op = "App.initOrderEvents"
	log := slog.With("op", op)

	if !app.cfg.BrokerConfigured() {
		log.Info("order events are disabled")
		return
	}

	broker := app.cfg.Broker
	topic := broker.Topics.OrdersPlaced

	tlsCfg, err := adapter.MakeTLSConfig(broker.TLS)
	if err != nil {
		app.fallDown(op, err)
	}

	srOpts := []sr.ClientOpt{sr.URLs(broker.SchemaRegistryURLs...)}
	if tlsCfg != nil {
		srOpts = append(srOpts, sr.DialTLSConfig(tlsCfg))
	}
	srClient, err := sr.NewClient(srOpts...)
	if err != nil {
		app.fallDown(op, err)
	}

	encoder, err := schema.NewOrderPlacedEncoder(
		app.ctx,
		topic+orderPlacedSubjectSuffix,
		schema.NewSchemaCreater(srClient),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	prd, err := kafka.NewOrderEventsProducer(
		kafka.ProducerClientOpt(app.ctx, broker.SeedBrokers, topic, tlsCfg),
		kafka.ProducerEncoderOpt(encoder),
	)
	if err != nil {
		app.fallDown(op, err)
	}
	app.orderEventsPrd = &prd
	log.Info("order events are enabled", "topic", topic)
}

func (app *App) initCoreService() {
	var prd port.OrderEventsProducer
	if app.orderEventsPrd != nil {
		prd = app.orderEventsPrd
	}
	app.service = service.New(app.gateway, prd)
	app.catalog = catalog.New()
}

func (app *App) initInboundAdapters() {
	cfg := app.cfg
	delays := storefront.Delays{
		Checkout:   cfg.Delays.Checkout,
		Account:    cfg.Delays.Account,
		Review:     cfg.Delays.Review,
		CloseReset: cfg.Delays.CloseReset,
	}

	app.clients = httphandler.NewClients(func() *storefront.Storefront {
		return storefront.New(app.catalog, app.service, delays)
	}, cfg.Clients.IdleTTL)

	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, app.clients, app.catalog)

	handler := httphandler.Middleware(mux)
	app.httpServer = httphandler.NewHTTPServer(
		cfg.HTTPServer.Addr, handler, cfg.HTTPServer.Timeout,
	)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)
	go app.clients.Run(app.ctx, app.cfg.Clients.SweepEvery)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	const op = "App.Close"
	log := slog.With("op", op)

	log.Info("application is closing...")

	app.httpServer.Close(ctx)

	if app.orderEventsPrd != nil {
		app.orderEventsPrd.Close()
	}
	if app.sqlDB != nil {
		app.sqlDB.Close()
	}
	if app.rdb != nil {
		if err := app.rdb.Close(); err != nil {
			log.Error("failed to close redis client", "err", err)
		}
	}

	log.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
