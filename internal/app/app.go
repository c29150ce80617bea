package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swift_elearning_backend/internal/config"
	"swift_elearning_backend/internal/controller"
	"swift_elearning_backend/internal/repository"
	"swift_elearning_backend/internal/service"
	"swift_elearning_backend/internal/util"
	"swift_elearning_backend/pkg/database"
	"swift_elearning_backend/pkg/logger"
	"swift_elearning_backend/pkg/monitoring"
	"swift_elearning_backend/pkg/security"
	"swift_elearning_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user    *repository.UserRepository
	admin   *repository.AdminRepository
	materi  *repository.MateriRepository
	video   *repository.VideoRepository
	tugas   *repository.TugasRepository
	attempt *repository.AttemptRepository
}

type services struct {
	auth    *service.AuthService
	authz   *service.AuthzService
	mail    *service.MailService
	storage *service.StorageService
	materi  *service.MateriService
	video   *service.VideoService
	tugas   *service.TugasService
	grading *service.GradingService
}

type controllers struct {
	auth   *controller.AuthController
	user   *controller.UserController
	admin  *controller.AdminController
	materi *controller.MateriController
	video  *controller.VideoController
	tugas  *controller.TugasController
	health *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:    repository.NewUserRepository(db),
		admin:   repository.NewAdminRepository(db),
		materi:  repository.NewMateriRepository(db),
		video:   repository.NewVideoRepository(db),
		tugas:   repository.NewTugasRepository(db),
		attempt: repository.NewAttemptRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.mail = service.NewMailService(&cfg.Mail)
	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, repos.admin, s.mail, cfg)
	s.authz = service.NewAuthzService(repos.user, repos.admin)
	s.materi = service.NewMateriService(repos.materi)
	s.video = service.NewVideoService(repos.video, repos.materi, repos.tugas, s.storage, rdb)
	s.tugas = service.NewTugasService(repos.tugas, repos.video, s.authz)
	s.grading = service.NewGradingService(repos.tugas, repos.attempt)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:   controller.NewAuthController(s.auth),
		user:   controller.NewUserController(repos.user),
		admin:  controller.NewAdminController(s.auth, repos.user),
		materi: controller.NewMateriController(s.materi, s.authz),
		video:  controller.NewVideoController(s.video, s.authz),
		tugas:  controller.NewTugasController(s.tugas, s.grading),
		health: controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 10000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	// Di mode release migrasi hanya jalan bila diminta eksplisit.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	if err := database.SeedRootAdmin(db, &cfg.Admin); err != nil {
		logger.Log.Fatal("failed to seed root admin", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis hanya dipakai cache presigned URL; tanpa redis server
		// tetap jalan, URL dihitung ulang tiap permintaan.
		logger.Log.Warn("redis unavailable, presigned URL cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("swift-elearning", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
