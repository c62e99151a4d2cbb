package app

import (
	"aptitude_portal_backend/internal/config"
	"aptitude_portal_backend/internal/controller"
	"aptitude_portal_backend/internal/repository"
	"aptitude_portal_backend/internal/service"
	"aptitude_portal_backend/pkg/database"
	"aptitude_portal_backend/pkg/logger"
	"aptitude_portal_backend/pkg/monitoring"
	"aptitude_portal_backend/pkg/security"
	"aptitude_portal_backend/pkg/tracing"
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

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

	reloads atomic.Int64
}

type repositories struct {
	question   *repository.QuestionRepository
	session    *repository.SessionRepository
	result     *repository.ResultRepository
	accessCode *repository.AccessCodeRepository
	feedback   *repository.FeedbackRepository
}

type services struct {
	compose    *service.ComposeService
	session    *service.SessionService
	accessCode *service.AccessCodeService
	question   *service.QuestionService
	feedback   *service.FeedbackService
}

type controllers struct {
	session  *controller.SessionController
	question *controller.QuestionController
	admin    *controller.AdminController
	feedback *controller.FeedbackController
	health   *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		question:   repository.NewQuestionRepository(db),
		session:    repository.NewSessionRepository(db),
		result:     repository.NewResultRepository(db),
		accessCode: repository.NewAccessCodeRepository(db),
		feedback:   repository.NewFeedbackRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s.compose = service.NewComposeService(repos.question, rng)
	s.session = service.NewSessionService(repos.session, repos.result, repos.accessCode, s.compose, cfg.Exam.SessionDuration, rdb)
	s.accessCode = service.NewAccessCodeService(repos.accessCode)
	s.question = service.NewQuestionService(repos.question, s.compose)
	s.feedback = service.NewFeedbackService(repos.feedback)

	return s
}

func (a *App) initControllers(s *services, repos *repositories, db *gorm.DB) *controllers {
	return &controllers{
		session:  controller.NewSessionController(s.session),
		question: controller.NewQuestionController(s.question),
		admin:    controller.NewAdminController(s.accessCode, repos.result),
		feedback: controller.NewFeedbackController(s.feedback),
		health:   controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

// ApplyConfig absorbs a hot-reloaded config. Only the exam duration and
// CORS list matter at runtime; a port or database change still needs a
// restart and is just logged.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	a.reloads.Add(1)
	logger.Log.Info("Configuration reloaded",
		zap.Int64("reloads", a.reloads.Load()),
		zap.Duration("sessionDuration", cfg.Exam.SessionDuration))
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, repos, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("aptitude-portal", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

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

	if a.Redis != nil {
		a.Redis.Close()
	}

	log.Println("Server exiting")
}
