package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kelvinmfon2025/book-api/internal/authz"
	"github.com/kelvinmfon2025/book-api/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Catalog *CatalogHandler
	Lending *LendingHandler
	Users   *UserHandler
	Export  *ExportHandler
}

// NewRouter builds the Gin engine with the middleware chain and every route.
// Role checks on routes mirror the ones the services enforce so forbidden
// requests are rejected before any body is read.
func NewRouter(h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Identity())
	router.Use(middleware.Metrics("/health", "/ready", "/live"))
	router.Use(middleware.AccessLog())

	router.GET("/health", h.Health.Health)
	router.GET("/ready", h.Health.Ready)
	router.GET("/live", h.Health.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.POST("/register", h.Users.Register)
		v1.POST("/verify-email", h.Users.VerifyEmail)
		v1.POST("/resend-verification", h.Users.ResendVerification)
		v1.GET("/search-by-query", h.Catalog.Search)
		v1.GET("/books", h.Catalog.List)
		v1.GET("/books/:id", h.Catalog.Get)

		authed := v1.Group("", middleware.RequireIdentity())
		{
			authed.POST("/borrow", h.Lending.Borrow)
			authed.POST("/return/:bookId", h.Lending.Return)
			authed.POST("/reserve/:bookId", h.Lending.Reserve)
			authed.GET("/users/:id/borrowed", h.Lending.ListBorrowed)

			authed.GET("/reservations", h.Lending.ListReservations)
			authed.POST("/reservations/:id/cancel", h.Lending.CancelReservation)
			authed.POST("/reservations/fulfill/:bookId",
				middleware.RequireAction(authz.ActionFulfillReservation), h.Lending.FulfillNextReservation)

			authed.GET("/profile", h.Users.GetProfile)
			authed.PATCH("/profile", h.Users.UpdateProfile)

			catalog := authed.Group("/books", middleware.RequireAction(authz.ActionManageCatalog))
			{
				catalog.POST("", h.Catalog.Create)
				catalog.PUT("/:id", h.Catalog.Update)
				catalog.DELETE("/:id", h.Catalog.Delete)
			}

			exports := authed.Group("/exports", middleware.RequireAction(authz.ActionManageCatalog))
			{
				exports.GET("/books", h.Export.ExportBooks)
			}

			admin := authed.Group("/users", middleware.RequireAction(authz.ActionManageUsers))
			{
				admin.PATCH("/:id/role", h.Users.ChangeRole)
				admin.DELETE("/:id", h.Users.DeleteUser)
			}
		}
	}

	return router
}
