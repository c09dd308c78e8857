package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/QAForum/internal/handler/http"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/middleware"
	redisclient "github.com/mikiasgoitom/QAForum/internal/infrastructure/cache"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/config"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/database"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/logger"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/messaging"
	passwordservice "github.com/mikiasgoitom/QAForum/internal/infrastructure/password_service"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/repository/gormrepo"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/store"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/QAForum/internal/infrastructure/validator"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
)

func main() {
	cfg, err := config.Load("./config")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var appConfig usecasecontract.IConfigProvider = cfg
	appLogger := logger.NewSlogLogger(cfg.App.LogFormat, cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Establish database connection
	db, err := database.NewDatabase(database.Options{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.Dsn,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        gormlogger.Warn,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			appLogger.Warnf("failed to close database: %v", err)
		}
	}()
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(); err != nil {
			appLogger.Fatalf("Failed to migrate database: %v", err)
		}
	}

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Repositories
	userRepo := gormrepo.NewUserRepository(db.DB)
	questionRepo := gormrepo.NewQuestionRepository(db.DB)
	answerRepo := gormrepo.NewAnswerRepository(db.DB)
	likeRepo := gormrepo.NewLikeRepository(db.DB)
	transactor := gormrepo.NewTransactor(db.DB)

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtManager := jwt.NewJWTManager(cfg.JWT.Secret, appConfig.GetAccessTokenExpiry(), cfg.App.Name)
	jwtService := jwt.NewJWTService(jwtManager)
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(userRepo, hasher, jwtService, appLogger, appValidator)
	questionUsecase := usecase.NewQuestionUsecase(questionRepo, answerRepo, appLogger)
	likeUsecase := usecase.NewLikeUsecase(likeRepo, answerRepo, transactor, appLogger)
	searchUsecase := usecase.NewSearchUsecase(questionRepo, answerRepo)

	// Optional Dependency Injection: Redis feed cache
	if cfg.Redis.URL != "" {
		rdb, err := redisclient.NewRedisFromURL(ctx, cfg.Redis.URL)
		if err != nil {
			appLogger.Warnf("Redis unavailable, question feed cache disabled: %v", err)
		} else {
			defer redisclient.Close(rdb)
			feedCache := store.NewQuestionFeedCache(rdb, appConfig.GetFeedCacheTTL())
			questionUsecase.SetFeedCache(feedCache)
			likeUsecase.SetFeedCache(feedCache)
		}
	}

	// Optional Dependency Injection: RabbitMQ like events
	var publisher contract.ILikeEventPublisher = messaging.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := messaging.NewRabbitPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue)
		if err != nil {
			appLogger.Warnf("RabbitMQ unavailable, like events disabled: %v", err)
		} else {
			defer func() {
				if err := rabbit.Close(); err != nil {
					appLogger.Warnf("failed to close RabbitMQ publisher: %v", err)
				}
			}()
			publisher = rabbit
		}
	}
	likeUsecase.SetEventPublisher(publisher)

	// Setup API routes
	router := gin.New()
	router.Use(gin.Recovery())
	appRouter := handlerHttp.NewRouter(
		userUsecase, questionUsecase, likeUsecase, searchUsecase,
		jwtService, uuidGenerator,
		middleware.NewLimiter(cfg.RateLimit.RequestsPerSecond),
		appLogger.Slog(),
	)
	appRouter.SetupRoutes(router)

	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		appLogger.Infof("Server running on port %s", cfg.App.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Errorf("Failed to start server: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Infof("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Errorf("Graceful shutdown failed: %v", err)
	}
}
