package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"net/http"
	"os"
	"weekendwish/cmd/fx/controllersfx"
	"weekendwish/cmd/fx/dbfx"
	"weekendwish/cmd/fx/itineraryfx"
	"weekendwish/cmd/fx/placesfx"
	"weekendwish/cmd/fx/recommendfx"
	"weekendwish/cmd/fx/routefx"
	"weekendwish/internal/api/controllers"
	"weekendwish/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		placesfx.Module,
		recommendfx.Module,
		routefx.Module,
		itineraryfx.Module,
		controllersfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
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
	recommendController *controllers.RecommendController,
	routeController *controllers.RouteController,
	placesController *controllers.PlacesController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, recommendController, routeController, placesController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	recommendController *controllers.RecommendController,
	routeController *controllers.RouteController,
	placesController *controllers.PlacesController,
	authController *controllers.AuthController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := r.Group("/api")
	apiGroup.POST("/recommend", recommendController.Recommend)
	apiGroup.POST("/route", routeController.BuildRoute)

	placesGroup := r.Group("/places")
	placesGroup.GET("", placesController.ListPlaces)

	adminGroup := placesGroup.Group("")
	adminGroup.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	adminGroup.POST("", placesController.CreatePlace)
	adminGroup.PUT("", placesController.UpdatePlace)
	adminGroup.DELETE("/:id", placesController.DeletePlace)

	authGroup := r.Group("/auth")
	authGroup.POST("/token", authController.IssueToken)
}
