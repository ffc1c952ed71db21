package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/jomin07/HavenHues-sub000/internal/cache"
	"github.com/jomin07/HavenHues-sub000/internal/config"
	"github.com/jomin07/HavenHues-sub000/internal/gateway"
	"github.com/jomin07/HavenHues-sub000/internal/handler"
	"github.com/jomin07/HavenHues-sub000/internal/metrics"
	"github.com/jomin07/HavenHues-sub000/internal/middleware"
	"github.com/jomin07/HavenHues-sub000/internal/notification"
	"github.com/jomin07/HavenHues-sub000/internal/repository/mongodb"
	"github.com/jomin07/HavenHues-sub000/internal/repository/postgres"
	"github.com/jomin07/HavenHues-sub000/internal/router"
	"github.com/jomin07/HavenHues-sub000/internal/scheduler"
	"github.com/jomin07/HavenHues-sub000/internal/service"
	"github.com/jomin07/HavenHues-sub000/internal/service/ports"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const migrationsDir = "migrations"

// stores is one storage backend seen through the service ports.
type stores struct {
	hotels   ports.HotelRepo
	bookings ports.BookingRepo
	users    ports.UserRepo
	wallets  ports.WalletRepo
	coupons  ports.CouponRepo
	tx       ports.Transactor
}

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	mongo      *mongodb.DB
	cache      *cache.RedisCache
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HavenHues",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	st, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initCache(); err != nil {
		return nil, fmt.Errorf("init cache: %w", err)
	}

	if err = app.initServices(st); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (*stores, error) {
	switch a.cfg.Storage.Driver {
	case config.StorageMongo:
		return a.initMongo()
	default:
		if err := a.runMigrations(); err != nil {
			return nil, fmt.Errorf("migrations: %w", err)
		}
		return a.initDB()
	}
}

func (a *App) initDB() (*stores, error) {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return &stores{
		hotels:   postgres.NewHotelRepo(db),
		bookings: postgres.NewBookingRepo(db),
		users:    postgres.NewUserRepo(db),
		wallets:  postgres.NewWalletRepo(db),
		coupons:  postgres.NewCouponRepo(db),
		tx:       postgres.NewTransactor(db),
	}, nil
}

func (a *App) initMongo() (*stores, error) {
	db, err := mongodb.Connect(context.Background(), a.cfg.Mongo.URI, a.cfg.Mongo.Database)
	if err != nil {
		return nil, err
	}

	a.mongo = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongodb connected",
		logger.String("database", a.cfg.Mongo.Database),
	)

	return &stores{
		hotels:   mongodb.NewHotelRepo(db),
		bookings: mongodb.NewBookingRepo(db),
		users:    mongodb.NewUserRepo(db),
		wallets:  mongodb.NewWalletRepo(db),
		coupons:  mongodb.NewCouponRepo(db),
		tx:       mongodb.NewTransactor(db),
	}, nil
}

func (a *App) initCache() error {
	c := cache.NewRedisCache(a.cfg.Redis.Addr, a.cfg.Redis.Password, a.cfg.Redis.DB)
	if err := c.Ping(context.Background()); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	a.cache = c
	return nil
}

func (a *App) initNotifier() (ports.Notifier, error) {
	var channels []ports.Notifier

	if a.cfg.Notifier.Enabled("telegram") {
		tg, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, "", a.log)
		if err != nil {
			return nil, fmt.Errorf("init telegram notifier: %w", err)
		}
		channels = append(channels, tg)
	}
	if a.cfg.Notifier.Enabled("mailjet") {
		channels = append(channels, notification.NewMailjetNotifier(notification.MailjetConfig{
			PublicKey:  a.cfg.Mailjet.PublicKey,
			PrivateKey: a.cfg.Mailjet.PrivateKey,
			FromEmail:  a.cfg.Mailjet.FromEmail,
			FromName:   a.cfg.Mailjet.FromName,
		}, a.log))
	}
	if a.cfg.Notifier.Enabled("log") {
		channels = append(channels, notification.NewLogNotifier(a.log))
	}

	return notification.NewMulti(a.log, channels...), nil
}

func (a *App) initServices(st *stores) error {
	n, err := a.initNotifier()
	if err != nil {
		return err
	}

	gw := gateway.NewStripeGateway(gateway.Options{
		SecretKey: a.cfg.Gateway.SecretKey,
		BaseURL:   a.cfg.Gateway.BaseURL,
		Timeout:   a.cfg.Gateway.Timeout,
		RPS:       a.cfg.Gateway.RPS,
		Backoff:   a.cfg.Gateway.Backoff,
	}, a.log)

	ledger := service.NewLedgerService(st.users, st.wallets, a.log)
	otpService := service.NewOTPService(a.cache, n, a.cfg.Booking.OTPTTL, a.log)
	userService := service.NewUserService(st.users, ledger, otpService, st.tx, service.ReferralConfig{
		RefereeBonus:  a.cfg.Booking.RefereeBonus,
		ReferrerBonus: a.cfg.Booking.ReferrerBonus,
	}, a.log)
	paymentService := service.NewPaymentService(
		st.hotels, st.bookings, st.users, ledger, gw, st.tx, n, a.log, a.cfg.Booking.Currency,
	)
	discountService := service.NewDiscountService(st.coupons, gw, st.tx, a.log)
	bookingService := service.NewBookingService(st.bookings, st.hotels, st.users, ledger, st.tx, n, a.log)
	availabilityService := service.NewAvailabilityService(st.hotels)
	reminderService := service.NewReminderService(st.bookings, st.hotels, st.users, n, service.ReminderConfig{
		LookAhead:   a.cfg.Scheduler.ReminderLookAhead,
		Tolerance:   a.cfg.Scheduler.ReminderTolerance,
		MaxAttempts: a.cfg.Scheduler.ReminderAttempts,
		Workers:     a.cfg.Scheduler.ReminderWorkers,
	}, a.log)

	a.scheduler = scheduler.New(
		reminderService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	h := handler.NewHandler(handler.Services{
		Payment:      paymentService,
		Discount:     discountService,
		Booking:      bookingService,
		Availability: availabilityService,
		Wallet:       ledger,
		User:         userService,
		OTP:          otpService,
	})

	reg := metrics.InitRegistry()
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		metrics.Handler(reg),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	if a.mongo != nil {
		if err := a.mongo.Disconnect(shutdownCtx); err != nil {
			return fmt.Errorf("close mongodb: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "mongodb connection closed")
	}

	if err := a.cache.Close(); err != nil {
		return fmt.Errorf("close redis: %w", err)
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
