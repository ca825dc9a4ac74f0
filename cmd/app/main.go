package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"cholojai/cmd/fx/assistant_fx"
	"cholojai/cmd/fx/catalog_fx"
	"cholojai/cmd/fx/handoff_fx"
	"cholojai/cmd/fx/quiz_fx"
	"cholojai/internal/api/controllers"
	"cholojai/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		catalog_fx.Module,
		assistant_fx.Module,
		quiz_fx.Module,
		handoff_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}
			go func() {
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	assistantController *controllers.AssistantController,
	packageController *controllers.PackageController,
	quizController *controllers.QuizController,
	handoffController *controllers.HandoffController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, assistantController, packageController, quizController, handoffController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	assistantController *controllers.AssistantController,
	packageController *controllers.PackageController,
	quizController *controllers.QuizController,
	handoffController *controllers.HandoffController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "cholojai-api",
		})
	})

	api := r.Group("/api")
	api.POST("/chat", assistantController.ChatHandler)
	api.POST("/handoff", handoffController.CreateHandoffHandler)

	api.GET("/packages", packageController.ListPackagesHandler)
	api.GET("/packages/:destination", packageController.GetPackageHandler)
	api.GET("/destinations", packageController.ListDestinationsHandler)
	api.GET("/budget-ranges", packageController.BudgetRangesHandler)

	quiz := api.Group("/quiz")
	quiz.POST("/start", quizController.StartQuizHandler)
	quiz.POST("/answers", quizController.AnswerQuizHandler)
	quiz.GET("/:sessionId/result", quizController.QuizResultHandler)
}
