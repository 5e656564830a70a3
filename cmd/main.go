package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/renatinhocg/bruna/config"
	adminctrl "github.com/renatinhocg/bruna/internal/controller/admin"
	userctrl "github.com/renatinhocg/bruna/internal/controller/user"
	"github.com/renatinhocg/bruna/internal/database"
	"github.com/renatinhocg/bruna/internal/logger"
	"github.com/renatinhocg/bruna/internal/middleware"
	"github.com/renatinhocg/bruna/internal/model"
	"github.com/renatinhocg/bruna/internal/repository"
	"github.com/renatinhocg/bruna/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Multiple Intelligences Test API
// @version 1.0
// @description Questionnaire, scoring and release workflow of the Multiple Intelligences career-coaching test.
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewCategoryRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerOptionRepository,
			repository.NewIntelligenceTestRepository,
		),

		// Services
		fx.Provide(
			service.NewCategoryService,
			service.NewQuestionService,
			service.NewAnswerOptionService,
			service.NewSubmissionService,
			service.NewTestService,
		),

		// Controllers
		fx.Provide(
			adminctrl.NewCatalogController,
			adminctrl.NewTestAdminController,
			userctrl.NewTestController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer wires the API routes and manages the HTTP
// server lifecycle through fx hooks.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	catalogCtrl *adminctrl.CatalogController,
	testAdminCtrl *adminctrl.TestAdminController,
	testCtrl *userctrl.TestController,
) {
	api := router.Group("/api/v1")
	api.Use(middleware.Identify(cfg.JWTSecret))

	// Public questionnaire surface. Submissions may be anonymous; the
	// projection of a single attempt depends on who is asking.
	api.GET("/quiz", testCtrl.GetQuiz)
	api.POST("/testes-inteligencia", testCtrl.SubmitTest)
	api.GET("/testes-inteligencia/verificar", middleware.RequireAuth(), testCtrl.VerifyCompleted)
	api.GET("/testes-inteligencia/:id", testCtrl.GetTest)
	api.GET("/resultados-inteligencias", middleware.RequireAuth(), testCtrl.MyResults)

	// Attempt administration
	api.GET("/testes-inteligencia", middleware.RequireAdmin(), testAdminCtrl.ListTests)
	api.PUT("/testes-inteligencia/:id/autorizar", middleware.RequireAdmin(), testAdminCtrl.AuthorizeTest)

	// Catalog administration
	adminAPI := api.Group("/admin")
	adminAPI.Use(middleware.RequireAdmin())
	{
		adminAPI.GET("/categorias", catalogCtrl.ListCategories)
		adminAPI.GET("/categorias/:id", catalogCtrl.GetCategory)
		adminAPI.POST("/categorias", catalogCtrl.CreateCategory)
		adminAPI.PUT("/categorias/:id", catalogCtrl.UpdateCategory)
		adminAPI.DELETE("/categorias/:id", catalogCtrl.DeleteCategory)

		adminAPI.GET("/perguntas", catalogCtrl.ListQuestions)
		adminAPI.GET("/perguntas/:id", catalogCtrl.GetQuestion)
		adminAPI.POST("/perguntas", catalogCtrl.CreateQuestion)
		adminAPI.PUT("/perguntas/:id", catalogCtrl.UpdateQuestion)
		adminAPI.DELETE("/perguntas/:id", catalogCtrl.DeleteQuestion)

		adminAPI.GET("/possibilidades", catalogCtrl.ListOptions)
		adminAPI.GET("/possibilidades/:id", catalogCtrl.GetOption)
		adminAPI.POST("/possibilidades", catalogCtrl.CreateOption)
		adminAPI.PUT("/possibilidades/:id", catalogCtrl.UpdateOption)
		adminAPI.DELETE("/possibilidades/:id", catalogCtrl.DeleteOption)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Multiple Intelligences API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Category{},
		&model.Question{},
		&model.AnswerOption{},
		&model.IntelligenceTest{},
		&model.Response{},
		&model.Result{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
