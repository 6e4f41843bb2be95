package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	assistantfx "yatra/cmd/fx/assistant_fx"
	controllersfx "yatra/cmd/fx/controllers_fx"
	dbfx "yatra/cmd/fx/db_fx"
	evalsfx "yatra/cmd/fx/evals_fx"
	exportfx "yatra/cmd/fx/export_fx"
	memcachefx "yatra/cmd/fx/memcache_fx"
	plannerfx "yatra/cmd/fx/planner_fx"
	poisfx "yatra/cmd/fx/pois_fx"
	"yatra/internal/api/controllers"
	"yatra/internal/infra"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	app := fx.New(
		dbfx.Module,
		memcachefx.Module,
		poisfx.Module,
		plannerfx.Module,
		evalsfx.Module,
		assistantfx.Module,
		exportfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg infra.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
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
	travelController *controllers.TravelController,
	itineraryController *controllers.ItineraryController,
	evaluationController *controllers.EvaluationController,
	poisController *controllers.POIsController,
	assistantController *controllers.AssistantController,
	exportController *controllers.ExportController,
) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		travelController,
		itineraryController,
		evaluationController,
		poisController,
		assistantController,
		exportController,
	)

	return r
}

func RegisterRoutes(r *gin.Engine,
	travelController *controllers.TravelController,
	itineraryController *controllers.ItineraryController,
	evaluationController *controllers.EvaluationController,
	poisController *controllers.POIsController,
	assistantController *controllers.AssistantController,
	exportController *controllers.ExportController,
) {

	travelGroup := r.Group("/travel")
	travelGroup.POST("/estimate", travelController.EstimateTravel)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/build", itineraryController.BuildItinerary)
	itineraryGroup.POST("/parse", itineraryController.ParseItinerary)

	evalGroup := r.Group("/evaluations")
	evalGroup.POST("/feasibility", evaluationController.EvaluateFeasibility)
	evalGroup.POST("/grounding", evaluationController.EvaluateGrounding)
	evalGroup.POST("/edit-correctness", evaluationController.EvaluateEditCorrectness)

	poisGroup := r.Group("/pois")
	poisGroup.GET("", poisController.ListReferencePOIs)
	poisGroup.GET("/search", poisController.SearchPOIs)

	assistantGroup := r.Group("/assistant")
	assistantGroup.Use(middleware.JWTAuthMiddleware())
	assistantGroup.POST("/plan", assistantController.PlanTrip)

	exportGroup := r.Group("/export")
	exportGroup.Use(middleware.JWTAuthMiddleware())
	exportGroup.POST("/itinerary", exportController.ExportItinerary)
}
