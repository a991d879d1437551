package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam_admin_backend/internal/config"
	"exam_admin_backend/internal/controller"
	"exam_admin_backend/internal/repository"
	"exam_admin_backend/internal/service"
	"exam_admin_backend/pkg/database"
	"exam_admin_backend/pkg/logger"
	"exam_admin_backend/pkg/monitoring"
	"exam_admin_backend/pkg/security"
	"exam_admin_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	exam         *repository.ExamRepository
	question     *repository.QuestionRepository
	candidate    *repository.CandidateRepository
	answer       *repository.AnswerRepository
	result       *repository.ResultRepository
	notification *repository.NotificationRepository
	material     *repository.MaterialRepository
	payment      *repository.PaymentRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	exam         *service.ExamService
	question     *service.QuestionService
	candidate    *service.CandidateService
	ingestion    *service.IngestionService
	scoring      *service.ScoringService
	notification *service.NotificationService
	material     *service.MaterialService
	payment      *service.PaymentService
	scheduleHub  *service.ScheduleHub
}

type controllers struct {
	auth         *controller.AuthController
	exam         *controller.ExamController
	question     *controller.QuestionController
	candidate    *controller.CandidateController
	answer       *controller.AnswerController
	result       *controller.ResultController
	notification *controller.NotificationController
	material     *controller.MaterialController
	payment      *controller.PaymentController
	schedule     *controller.ScheduleController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig applies a hot-reloaded configuration. Only settings read per
// request pick up the new values; server port and connections keep their
// boot-time configuration.
func (a *App) ReloadConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		exam:         repository.NewExamRepository(db),
		question:     repository.NewQuestionRepository(db),
		candidate:    repository.NewCandidateRepository(db),
		answer:       repository.NewAnswerRepository(db),
		result:       repository.NewResultRepository(db, rdb),
		notification: repository.NewNotificationRepository(db),
		material:     repository.NewMaterialRepository(db),
		payment:      repository.NewPaymentRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.exam = service.NewExamService(repos.exam, repos.question)
	s.question = service.NewQuestionService(repos.exam, repos.question)
	s.candidate = service.NewCandidateService(repos.candidate, repos.exam, s.question)
	s.ingestion = service.NewIngestionService(repos.answer, repos.candidate)
	s.scoring = service.NewScoringService(repos.exam, repos.question, repos.candidate, repos.answer, repos.result)
	s.payment = service.NewPaymentService(cfg.Payment, repos.payment, repos.candidate, repos.exam)
	s.material = service.NewMaterialService(repos.material, s.payment, s.storage, logger.Log)

	s.scheduleHub = service.NewScheduleHub(rdb)
	go s.scheduleHub.Run()

	s.notification = service.NewNotificationService(repos.notification, s.scheduleHub)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		exam:         controller.NewExamController(s.exam),
		question:     controller.NewQuestionController(s.question),
		candidate:    controller.NewCandidateController(s.candidate, s.storage),
		answer:       controller.NewAnswerController(s.ingestion),
		result:       controller.NewResultController(s.scoring),
		notification: controller.NewNotificationController(s.notification),
		material:     controller.NewMaterialController(s.material),
		payment:      controller.NewPaymentController(s.payment),
		schedule:     controller.NewScheduleController(s.scheduleHub),
		health:       controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks publishes an exam reminder over the schedule hub
// once a minute while an exam is scheduled for the current date.
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			exam, err := s.exam.Today()
			if err != nil {
				continue
			}
			s.scheduleHub.Publish(service.ScheduleEvent{
				Type: service.EventExamReminder,
				Payload: gin.H{
					"examTitle": exam.Title,
					"examDate":  exam.ExamDate,
					"startTime": exam.StartTime,
					"endTime":   exam.EndTime,
				},
			})
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("exam-admin", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

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

	if a.services != nil && a.services.scheduleHub != nil {
		a.services.scheduleHub.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
