package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/QAForum/internal/domain/contract"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/dto"
	"github.com/mikiasgoitom/QAForum/internal/handler/http/middleware"
	"github.com/mikiasgoitom/QAForum/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/QAForum/internal/usecase/contract"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Router struct {
	userHandler        *UserHandler
	questionHandler    *QuestionHandler
	interactionHandler *InteractionHandler
	searchHandler      *SearchHandler
	userUsecase        usecasecontract.IUserUseCase
	jwtService         usecase.JWTService
	uuidGen            contract.IUUIDGenerator
	limiter            *limiter.Limiter
	logger             *slog.Logger
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	questionUsecase usecasecontract.IQuestionUseCase,
	likeUsecase usecasecontract.ILikeUseCase,
	searchUsecase usecasecontract.ISearchUseCase,
	jwtService usecase.JWTService,
	uuidGen contract.IUUIDGenerator,
	lmt *limiter.Limiter,
	logger *slog.Logger,
) *Router {
	return &Router{
		userHandler:        NewUserHandler(userUsecase),
		questionHandler:    NewQuestionHandler(questionUsecase),
		interactionHandler: NewInteractionHandler(likeUsecase),
		searchHandler:      NewSearchHandler(searchUsecase),
		userUsecase:        userUsecase,
		jwtService:         jwtService,
		uuidGen:            uuidGen,
		limiter:            lmt,
		logger:             logger,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.RequestID(r.uuidGen))
	if r.logger != nil {
		router.Use(middleware.RequestLogger(r.logger))
	}
	router.Use(middleware.Metrics())
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))
	if r.limiter != nil {
		router.Use(middleware.RateLimiter(r.limiter))
	}

	router.GET("/health", func(c *gin.Context) {
		SuccessHandler(c, http.StatusOK, dto.HealthResponse{OK: true})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	auth := middleware.AuthMiddleWare(r.jwtService, r.userUsecase)

	// Public user routes
	users := api.Group("/users")
	{
		users.POST("/register", r.userHandler.CreateUser)
		users.POST("/login", r.userHandler.Login)
		users.GET("/me", auth, r.userHandler.GetCurrentUser)
	}

	// Every question route requires authentication
	questions := api.Group("/questions")
	questions.Use(auth)
	{
		questions.POST("", r.questionHandler.CreateQuestionHandler)
		questions.GET("", r.questionHandler.ListQuestionsHandler)
		questions.GET("/search", r.searchHandler.Search)
		questions.POST("/answers/:id/like", r.interactionHandler.ToggleAnswerLikeHandler)
		questions.POST("/:questionId/answers", r.questionHandler.CreateAnswerHandler)
		questions.GET("/:questionId/answers", r.questionHandler.ListAnswersHandler)
	}
}
