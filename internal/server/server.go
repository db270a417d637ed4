package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yutsuc/fsnd-trivia-api/internal/config"
	"github.com/yutsuc/fsnd-trivia-api/internal/handlers"
	"github.com/yutsuc/fsnd-trivia-api/internal/middleware"
	"github.com/yutsuc/fsnd-trivia-api/internal/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Server struct {
	router *gin.Engine
	logger *zap.Logger
	cfg    *config.Config
}

type Option func(*options)

type options struct {
	quiz []services.QuizOption
}

// WithQuizOptions passes options through to the quiz service.
func WithQuizOptions(opts ...services.QuizOption) Option {
	return func(o *options) {
		o.quiz = append(o.quiz, opts...)
	}
}

func New(cfg *config.Config, db *gorm.DB, logger *zap.Logger, opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	categoryService := services.NewCategoryService(db)
	questionService := services.NewQuestionService(db, logger)
	quizService := services.NewQuizService(db, categoryService, o.quiz...)

	categoryHandler := handlers.NewCategoryHandler(categoryService, questionService)
	questionHandler := handlers.NewQuestionHandler(questionService, categoryService)
	quizHandler := handlers.NewQuizHandler(quizService)
	healthHandler := handlers.NewHealthHandler(db)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	r.Use(ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, recovered any) {
		logger.Error("panic recovered",
			zap.Any("panic", recovered),
			zap.String("request_id", middleware.GetRequestID(c)),
		)
		handlers.AbortWithError(c, http.StatusInternalServerError)
	}))
	// Engine level so preflight requests, which match no route, still get CORS headers.
	r.Use(middleware.CORS("/api", cfg.CORS))
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusNotFound)
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.AbortWithError(c, http.StatusMethodNotAllowed)
	})

	r.GET("/healthz", healthHandler.Health)
	if cfg.Server.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	{
		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.ListCategories)
			categories.GET("/:id/questions", categoryHandler.ListCategoryQuestions)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateOrSearchQuestions)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		api.POST("/quizzes", quizHandler.NextQuestion)
	}

	return &Server{router: r, logger: logger, cfg: cfg}
}

// Router returns the gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
