package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/chronominerals/minerals-insight/controllers"
	"github.com/chronominerals/minerals-insight/middleware"
	"github.com/chronominerals/minerals-insight/services"
)

// Controllers bundles the wired controllers for route registration.
type Controllers struct {
	Auth      *controllers.AuthController
	Minerals  *controllers.MineralController
	Analytics *controllers.AnalyticsController
	Users     *controllers.UserController
}

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine, auth *services.AuthService, ctrl Controllers) {
	// Public routes
	router.GET("/", controllers.HealthCheck)

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", ctrl.Auth.Register)
		authGroup.POST("/login", ctrl.Auth.Login)
	}

	// Protected API routes
	api := router.Group("/api")
	api.Use(middleware.AuthRequired(auth))
	{
		api.GET("/roles/:role/permissions", ctrl.Auth.Permissions)
		api.GET("/dashboard", ctrl.Analytics.Dashboard)

		view := api.Group("")
		view.Use(middleware.RequirePermission(services.PermissionViewAll))
		{
			view.GET("/minerals", ctrl.Minerals.Search)
			view.GET("/minerals/names", ctrl.Minerals.MineralNames)
			view.GET("/countries", ctrl.Analytics.Countries)
			view.GET("/countries/names", ctrl.Minerals.CountryNames)
			view.GET("/country/:name", ctrl.Analytics.CountryProfile)
			view.GET("/deposits", ctrl.Minerals.Deposits)

			analytics := view.Group("/analytics")
			{
				analytics.GET("/summary", ctrl.Analytics.Summary)
				analytics.GET("/production/:mineral", ctrl.Analytics.ProductionByCountry)
				analytics.GET("/market-share/:mineral", ctrl.Analytics.MarketShareByCountry)
				analytics.GET("/prices", ctrl.Analytics.AveragePrices)
				analytics.GET("/top-producers", ctrl.Analytics.TopProducers)
				analytics.GET("/reserves", ctrl.Analytics.ReservesComparison)
			}
		}

		api.GET("/export", middleware.RequirePermission(services.PermissionExportData), ctrl.Minerals.Export)

		admin := api.Group("")
		admin.Use(middleware.RequirePermission(services.PermissionManageUsers))
		{
			admin.GET("/users", ctrl.Users.ListUsers)
			admin.POST("/dataset/reload", ctrl.Minerals.Reload)
		}
	}
}
