package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/MoodLink/ArenaAxis-sub000/internal/api/consumers/payment_events"
	createFieldPricingHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/create_field_pricing"
	createSpecialDatePricingHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/create_special_date_pricing"
	deleteFieldPricingHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/delete_field_pricing"
	getRevenueHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/get_revenue"
	getSlotGridHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/get_slot_grid"
	listFieldPricingsHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/list_field_pricings"
	quoteBookingHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/quote_booking"
	refreshGridsHandler "github.com/MoodLink/ArenaAxis-sub000/internal/api/handlers/refresh_grids"
	"github.com/MoodLink/ArenaAxis-sub000/internal/api/middleware"
	"github.com/MoodLink/ArenaAxis-sub000/internal/config"
	"github.com/MoodLink/ArenaAxis-sub000/internal/infra/storage/snapshot"
	"github.com/MoodLink/ArenaAxis-sub000/internal/service/refresher"
	getRevenueUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_revenue"
	getSlotGridUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/get_slot_grid"
	quoteBookingUC "github.com/MoodLink/ArenaAxis-sub000/internal/usecase/quote_booking"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/logger"
	"github.com/MoodLink/ArenaAxis-sub000/pkg/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, the grid refresher and the payment events consumer",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting arena-slots...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Снимки сеток в Postgres (если включены)
	var snapshots getSlotGridUC.SnapshotRepository
	if cfg.Snapshots.Enabled {
		db, err := openDatabase(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		repo := snapshot.NewRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare snapshot table: %w", err)
		}
		if cfg.Snapshots.RetentionDays > 0 {
			before := time.Now().AddDate(0, 0, -cfg.Snapshots.RetentionDays)
			removed, err := repo.DeleteOlderThan(ctx, before)
			if err != nil {
				log.Warn("Failed to remove old snapshots: %v", err)
			} else {
				log.Info("Removed %d snapshots older than %d days", removed, cfg.Snapshots.RetentionDays)
			}
		}
		snapshots = repo
	}

	deps, err := buildCore(cfg, log, metricsCollector, snapshots)
	if err != nil {
		return err
	}
	log.Info("Arena API client initialized (url=%s timeout=%ds)", cfg.ArenaAPI.URL, cfg.ArenaAPI.Timeout)

	// Сервис обновления сеток
	refresherSvc := refresher.NewService(
		deps.slotGrid,
		deps.grids,
		metricsCollector,
		refresher.Settings{
			Interval:      cfg.Refresh.IntervalDuration(),
			BurstCount:    cfg.Refresh.BurstCount,
			BurstInterval: cfg.Refresh.BurstIntervalDuration(),
		},
		log,
	)
	deps.pricingSvc.SetRefreshNotifier(refresherSvc)

	// Инициализируем use cases
	quoteBookingUseCase := quoteBookingUC.NewUseCase(deps.slotGrid, log)
	getRevenueUseCase := getRevenueUC.NewUseCase(deps.client, log)

	// Инициализируем handlers
	getSlotGrid := getSlotGridHandler.NewHandler(deps.slotGrid, log)
	quoteBooking := quoteBookingHandler.NewHandler(quoteBookingUseCase, log)
	refreshGrids := refreshGridsHandler.NewHandler(refresherSvc, log)
	listFieldPricings := listFieldPricingsHandler.NewHandler(deps.pricingSvc, log)
	createFieldPricing := createFieldPricingHandler.NewHandler(deps.pricingSvc, log)
	createSpecialDatePricing := createSpecialDatePricingHandler.NewHandler(deps.pricingSvc, log)
	deleteFieldPricing := deleteFieldPricingHandler.NewHandler(deps.pricingSvc, log)
	getRevenue := getRevenueHandler.NewHandler(getRevenueUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	// Сетка слотов магазина на дату
	api.HandleFunc("/stores/{storeId}/slot-grid", getSlotGrid.Handle).Methods(http.MethodGet)

	// Расчет стоимости выбранных слотов
	api.HandleFunc("/stores/{storeId}/quote", quoteBooking.Handle).Methods(http.MethodPost)

	// Внешний сигнал на обновление сеток (visibility, navigation, payment_completed)
	api.HandleFunc("/refresh", refreshGrids.Handle).Methods(http.MethodPost)

	// Правила цен поля
	api.HandleFunc("/fields/{fieldId}/pricings", listFieldPricings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/fields/{fieldId}/pricings", createFieldPricing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/fields/{fieldId}/pricings/special-date", createSpecialDatePricing.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/fields/{fieldId}/pricings/{pricingId}", deleteFieldPricing.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/stores/{storeId}/revenue", getRevenue.Handle).Methods(http.MethodGet)

	var wg sync.WaitGroup

	if cfg.Refresh.Enabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refresherSvc.Run(ctx)
		}()
		log.Info("Grid refresher started (interval=%s, burst=%dx%s)",
			cfg.Refresh.IntervalDuration(), cfg.Refresh.BurstCount, cfg.Refresh.BurstIntervalDuration())
	}

	if cfg.RabbitMQ.Enabled {
		consumer, err := startPaymentConsumer(ctx, &wg, cfg.RabbitMQ, refresherSvc, log)
		if err != nil {
			return err
		}
		defer consumer.Close()
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Ожидаем сигнал завершения
	select {
	case <-ctx.Done():
	case err := <-serverErr:
		log.Error("Server failed: %v", err)
		stop()
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server stopped gracefully")
	return nil
}

// openDatabase открывает пул соединений lib/pq и проверяет соединение
func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// startPaymentConsumer подключается к RabbitMQ и читает события оплаты в фоне
func startPaymentConsumer(
	ctx context.Context,
	wg *sync.WaitGroup,
	cfg config.RabbitMQConfig,
	refresherSvc *refresher.Service,
	log *logger.Logger,
) (*payment_events.Consumer, error) {
	host, _ := os.Hostname()
	consumer := payment_events.NewConsumer(payment_events.Config{
		URL:         cfg.URL,
		Exchange:    cfg.Exchange,
		Queue:       cfg.Queue,
		RoutingKeys: cfg.RoutingKeys,
		ConsumerTag: "arena-slots-" + host,
	}, refresherSvc, log)

	if err := consumer.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := consumer.Run(ctx); err != nil {
			log.Error("Payment events consumer stopped: %v", err)
		}
	}()
	log.Info("Payment events consumer started (exchange=%s queue=%s)", cfg.Exchange, cfg.Queue)
	return consumer, nil
}
