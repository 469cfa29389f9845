// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planotes/internal/delivery/http/middleware"
	"planotes/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler        *handler.AuthHandler
	ProfileHandler     *handler.ProfileHandler
	NoteHandler        *handler.NoteHandler
	CompletableHandler *handler.CompletableHandler
	ShopHandler        *handler.ShopHandler
	AvatarHandler      *handler.AvatarHandler
	PreferenceHandler  *handler.PreferenceHandler
	HealthHandler      *handler.HealthHandler
	SessionMiddleware  *middleware.SessionMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth        *handler.AuthHandler
	profile     *handler.ProfileHandler
	notes       *handler.NoteHandler
	completable *handler.CompletableHandler
	shop        *handler.ShopHandler
	avatars     *handler.AvatarHandler
	preferences *handler.PreferenceHandler
	health      *handler.HealthHandler
	session     *middleware.SessionMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:        params.AuthHandler,
		profile:     params.ProfileHandler,
		notes:       params.NoteHandler,
		completable: params.CompletableHandler,
		shop:        params.ShopHandler,
		avatars:     params.AvatarHandler,
		preferences: params.PreferenceHandler,
		health:      params.HealthHandler,
		session:     params.SessionMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.health.Check)

	// Public routes
	e.GET("/avatars/:seed", r.avatars.Render)
	e.PUT("/preferences/color-scheme", r.preferences.SetColorScheme)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/sign-in", r.auth.SignIn)
		authGroup.POST("/redeem", r.auth.Redeem)
		authGroup.POST("/sign-out", r.auth.SignOut)
	}

	// Everything below requires a valid session cookie.
	authed := e.Group("", r.session.RequireUser)
	{
		authed.GET("/me", r.profile.Get)
		authed.PUT("/me", r.profile.Update)
		authed.DELETE("/me", r.profile.Delete)

		notes := authed.Group("/notes")
		notes.POST("", r.notes.Create)
		notes.GET("", r.notes.List)
		notes.GET("/:id", r.notes.Get)
		notes.PUT("/:id", r.notes.Update)
		notes.DELETE("/:id", r.notes.Delete)
		notes.POST("/:id/convert", r.notes.Convert)

		completables := authed.Group("/completables")
		completables.POST("", r.completable.Create)
		completables.GET("", r.completable.List)
		completables.GET("/:id", r.completable.Get)
		completables.PUT("/:id", r.completable.Update)
		completables.DELETE("/:id", r.completable.Delete)
		completables.POST("/:id/status", r.completable.Transition)

		items := authed.Group("/items")
		items.POST("", r.shop.CreateItem)
		items.GET("", r.shop.ListItems)
		items.GET("/:id", r.shop.GetItem)
		items.PUT("/:id", r.shop.UpdateItem)
		items.DELETE("/:id", r.shop.DeleteItem)
		items.POST("/:id/purchase", r.shop.Purchase)

		authed.GET("/balance/history", r.shop.BalanceHistory)
	}
}
