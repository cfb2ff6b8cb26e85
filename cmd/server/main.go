package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fadelaryap/agrione-v1-sub000/api/handler"
	"github.com/fadelaryap/agrione-v1-sub000/internal/config"
	"github.com/fadelaryap/agrione-v1-sub000/internal/infrastructure/buffer"
	"github.com/fadelaryap/agrione-v1-sub000/internal/infrastructure/monitor"
	pgInfra "github.com/fadelaryap/agrione-v1-sub000/internal/infrastructure/postgres"
	redisInfra "github.com/fadelaryap/agrione-v1-sub000/internal/infrastructure/redis"
	"github.com/fadelaryap/agrione-v1-sub000/internal/middleware"
	"github.com/fadelaryap/agrione-v1-sub000/internal/router"
	"github.com/fadelaryap/agrione-v1-sub000/internal/services"
	"github.com/fadelaryap/agrione-v1-sub000/internal/services/lifecycle"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/httpcontext"
	"github.com/fadelaryap/agrione-v1-sub000/pkg/logger"
	"github.com/fadelaryap/agrione-v1-sub000/repository/postgres"
	redisRepo "github.com/fadelaryap/agrione-v1-sub000/repository/redis"
	calendarUC "github.com/fadelaryap/agrione-v1-sub000/usecase/calendar"
	cultivationUC "github.com/fadelaryap/agrione-v1-sub000/usecase/cultivation"
	planningUC "github.com/fadelaryap/agrione-v1-sub000/usecase/planning"
	workorderUC "github.com/fadelaryap/agrione-v1-sub000/usecase/workorder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	bufferStore, err := buffer.Open(cfg.Buffer.Path, "buffer")
	if err != nil {
		zapLogger.Fatal("failed to open buffer store", zap.Error(err))
	}
	manager.Register("buffer", func(ctx context.Context) error {
		return bufferStore.Close()
	})

	mon := monitor.New(pool, redisClient, bufferStore, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	fieldRepo := postgres.NewFieldRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	seasonRepo := postgres.NewSeasonRepository(pool)
	workOrderRepo := postgres.NewWorkOrderRepository(pool)
	templateRepo := redisRepo.NewTemplateRepository(redisClient)

	bufferProcessor := services.NewBufferProcessor(
		bufferStore,
		mon,
		workOrderRepo,
		zapLogger,
		services.ProcessorConfig{
			Interval:   cfg.Buffer.SyncInterval,
			BatchSize:  50,
			MaxRetries: cfg.Buffer.MaxRetry,
		},
	)
	bufferProcessor.Start()
	manager.Register("buffer_processor", func(ctx context.Context) error {
		bufferProcessor.Stop(ctx)
		return nil
	})

	bufferBridge := services.NewBufferBridge(bufferProcessor)

	planningUseCase := planningUC.New(templateRepo, planningUC.Options{
		ShiftNonHSTByDelta: cfg.Planner.ShiftNonHSTByDelta,
	}, zapLogger)
	cultivationUseCase := cultivationUC.New(seasonRepo, workOrderRepo, fieldRepo, userRepo,
		cultivationUC.Options{EligibleRoles: cfg.Planner.AssigneeRoles}, zapLogger)
	workOrderUseCase := workorderUC.New(workOrderRepo, bufferBridge, zapLogger)
	calendarUseCase := calendarUC.New(workOrderRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Planning:  apiHandler.NewPlanningHandler(planningUseCase, ctxAdapter, zapLogger),
		Season:    apiHandler.NewSeasonHandler(cultivationUseCase, ctxAdapter, zapLogger),
		WorkOrder: apiHandler.NewWorkOrderHandler(workOrderUseCase, calendarUseCase, ctxAdapter, zapLogger),
		Health:    apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(cfg.JWT.Secret, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
