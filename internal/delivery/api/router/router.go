// Package router contains routing for the listing API.
package router

import (
	"matjip/internal/delivery/api/middleware"
	"matjip/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ListingHandler *handler.ListingHandler
	AssetHandler   *handler.AssetHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	listingHandler *handler.ListingHandler
	assetHandler   *handler.AssetHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		listingHandler: params.ListingHandler,
		assetHandler:   params.AssetHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Stored listing images
	e.GET("/assets/*", r.assetHandler.GetAsset)

	apiV1 := e.Group("/api/v1")

	// Public listing pages
	listingsGroup := apiV1.Group("/listings")
	{
		listingsGroup.GET("", r.listingHandler.ListListings)
		listingsGroup.GET("/:id", r.listingHandler.GetListing)
		listingsGroup.GET("/:id/qr", r.listingHandler.GetListingQR)
	}

	// Writing requires a signed-in owner
	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)
	{
		authed.GET("/me/listings", r.listingHandler.ListMyListings)
		authed.POST("/listings", r.listingHandler.CreateListing)
		authed.PUT("/listings/:id", r.listingHandler.UpdateListing)
	}
}
