package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/tigercart/internal/metrics"
	"github.com/polkiloo/tigercart/internal/server/http/handlers"
	"github.com/polkiloo/tigercart/internal/server/http/middleware"
)

// maxRequestBody caps inflated gzip request bodies.
const maxRequestBody = 1 << 20

// Params lists the dependencies of the HTTP router.
type Params struct {
	fx.In

	Facade  handlers.MarketFacade
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// Setup configures gin router with handlers and middleware.
func Setup(p Params) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(p.Logger))
	engine.Use(middleware.Metrics(p.Metrics))
	engine.Use(middleware.DecompressRequest(maxRequestBody))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	facade := p.Facade
	authHandler := handlers.NewAuthHandler(facade, p.Logger)
	catalogHandler := handlers.NewCatalogHandler(facade, p.Logger)
	cartHandler := handlers.NewCartHandler(facade, p.Logger)
	orderHandler := handlers.NewOrderHandler(facade, p.Logger)
	deliveryHandler := handlers.NewDeliveryHandler(facade, p.Logger)
	ratingHandler := handlers.NewRatingHandler(facade, p.Logger)
	profileHandler := handlers.NewProfileHandler(facade, facade, p.Logger)
	adminHandler := handlers.NewAdminHandler(facade, facade, p.Logger)

	engine.GET("/health", adminHandler.Health)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	api := engine.Group("/api")
	auth := api.Group("/auth")
	auth.GET("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)

	admin := api.Group("/admin")
	admin.Use(middleware.AdminRequired(facade))
	admin.POST("/orders/reset", adminHandler.ResetOrders)

	user := api.Group("")
	user.Use(middleware.AuthRequired(facade))

	user.GET("/items", catalogHandler.Items)
	user.GET("/categories", catalogHandler.Categories)
	user.GET("/categories/:category/items", catalogHandler.CategoryItems)

	user.GET("/cart", cartHandler.View)
	user.GET("/cart/count", cartHandler.Count)
	user.POST("/cart/items/:item_id", cartHandler.Add)
	user.PUT("/cart/items/:item_id", cartHandler.Update)
	user.POST("/cart/items/:item_id/:action", cartHandler.Adjust)
	user.DELETE("/cart/items/:item_id", cartHandler.Remove)

	user.POST("/orders", orderHandler.Place)
	user.GET("/orders", orderHandler.List)
	user.GET("/orders/current", orderHandler.Current)
	user.GET("/orders/:id", orderHandler.Get)
	user.GET("/orders/:id/timeline", orderHandler.Timeline)
	user.POST("/orders/:id/cancel", orderHandler.Cancel)

	user.GET("/deliveries", deliveryHandler.List)
	user.POST("/deliveries/:id/claim", deliveryHandler.Claim)
	user.POST("/deliveries/:id/decline", deliveryHandler.Decline)
	user.POST("/deliveries/:id/checklist", deliveryHandler.Checklist)

	user.POST("/ratings", ratingHandler.Submit)
	user.GET("/users/:id/ratings", ratingHandler.User)

	user.GET("/favorites", profileHandler.Favorites)
	user.POST("/favorites/:item_id", profileHandler.AddFavorite)
	user.DELETE("/favorites/:item_id", profileHandler.RemoveFavorite)

	user.GET("/profile", profileHandler.Get)
	user.PUT("/profile", profileHandler.Update)

	return engine
}
