package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"oecd_explorer/internal/config"
	"oecd_explorer/internal/controller"
	"oecd_explorer/internal/repository"
	"oecd_explorer/internal/service"
	"oecd_explorer/pkg/database"
	"oecd_explorer/pkg/logger"
	"oecd_explorer/pkg/monitoring"
	"oecd_explorer/pkg/security"
	"oecd_explorer/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	services *services
	tracer   *sdktrace.TracerProvider

	mu              sync.Mutex
	configCallbacks []func(*config.Config)
}

type repositories struct {
	state  repository.StateRepository
	events repository.EventLogRepository
}

type services struct {
	store      *service.StateStore
	recorder   *service.EventRecorder
	storage    *service.StorageService
	modules    *service.ModuleService
	onboarding *service.OnboardingService
	transfer   *service.TransferService
	reports    *service.ReportService
}

type controllers struct {
	health     *controller.HealthController
	onboarding *controller.OnboardingController
	modules    *controller.ModuleController
	transfer   *controller.TransferController
	reports    *controller.ReportController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热更新入口，依次执行已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.mu.Lock()
	callbacks := make([]func(*config.Config), len(a.configCallbacks))
	copy(callbacks, a.configCallbacks)
	a.mu.Unlock()

	for _, cb := range callbacks {
		cb(cfg)
	}
	logger.Log.Info("Configuration reloaded", zap.String("mode", cfg.Server.Mode))
}

// openRepositories 根据 store.backend 选择 gorm 或 redis
func (a *App) openRepositories(cfg *config.Config) (*repositories, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		a.Redis = rdb
		return &repositories{
			state:  repository.NewRedisStateRepository(rdb),
			events: repository.NewRedisEventLogRepository(rdb),
		}, nil
	default:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		a.DB = db
		return &repositories{
			state:  repository.NewGormStateRepository(db),
			events: repository.NewGormEventLogRepository(db),
		}, nil
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	s := &services{}

	s.store = service.NewStateStore(repos.state)
	if err := s.store.Init(context.Background()); err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}

	s.storage = service.NewStorageService(cfg)
	s.recorder = service.NewEventRecorder(s.store, repos.events, service.NewLRSClient(cfg.Telemetry.Timeout), cfg.Telemetry)
	s.modules = service.NewModuleService(s.store, s.recorder)
	s.onboarding = service.NewOnboardingService(s.store, s.recorder)
	s.transfer = service.NewTransferService(s.store, s.recorder, s.modules, s.storage)
	s.reports = service.NewReportService(s.store)
	return s, nil
}

func (a *App) initControllers(s *services, cfg *config.Config) *controllers {
	return &controllers{
		health:     controller.NewHealthController(s.store, cfg.Store.Backend),
		onboarding: controller.NewOnboardingController(s.onboarding),
		modules:    controller.NewModuleController(s.modules, s.reports),
		transfer:   controller.NewTransferController(s.transfer),
		reports:    controller.NewReportController(s.reports),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	if cfg.RateLimit.MaxRequests > 0 && cfg.RateLimit.WindowMinutes > 0 {
		router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute, "/health", "/metrics"))
	}

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// build 在仓储就绪后组装服务、控制器与路由
func (a *App) build(repos *repositories) error {
	cfg := a.Config

	services, err := a.initServices(repos, cfg)
	if err != nil {
		return err
	}
	a.services = services
	controllers := a.initControllers(services, cfg)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	a.Router = router

	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, controllers, cfg)

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})
	return nil
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	app := &App{Config: cfg}

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(&cfg.Tracing)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	repos, err := app.openRepositories(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize state store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
		log.Fatalf("Failed to initialize state store: %v", err)
	}

	if err := app.build(repos); err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	return app
}

// ExportTo 将导出文档写入本地文件
func (a *App) ExportTo(ctx context.Context, path string) error {
	doc, err := a.services.transfer.Export(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportFrom 从本地文件导入，返回导入后应进入的页面
func (a *App) ImportFrom(ctx context.Context, path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	result, err := a.services.transfer.Import(ctx, raw)
	if err != nil {
		return "", err
	}
	return result.Route, nil
}

// Close 等待未完成的遥测发送并释放连接
func (a *App) Close(ctx context.Context) {
	if a.services != nil {
		done := make(chan struct{})
		go func() {
			a.services.recorder.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-ctx.Done():
			logger.Log.Warn("Pending statement emissions abandoned")
		}
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}
}

func (a *App) Run() {
	addr := a.Config.Server.Host + ":" + a.Config.Server.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}
	a.Close(ctx)

	logger.Log.Info("Server exiting")
}
