package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-console/internal/backend"
	"github.com/BruksfildServices01/salon-console/internal/config"
	"github.com/BruksfildServices01/salon-console/internal/handlers"
	"github.com/BruksfildServices01/salon-console/internal/media"
	"github.com/BruksfildServices01/salon-console/internal/middleware"
	"github.com/BruksfildServices01/salon-console/internal/panels"
	"github.com/BruksfildServices01/salon-console/internal/state"
	ucDashboard "github.com/BruksfildServices01/salon-console/internal/usecase/dashboard"
	ucGallery "github.com/BruksfildServices01/salon-console/internal/usecase/gallery"
	ucOrders "github.com/BruksfildServices01/salon-console/internal/usecase/orders"
	"github.com/BruksfildServices01/salon-console/internal/workspace"
)

// Deps are the singletons built in main. Optional ones may be nil.
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	API      *backend.API
	Registry *workspace.Registry

	Auditor     panels.Auditor
	AuditLogs   handlers.AuditLogLister
	Accumulator state.Accumulator
	Resolver    media.Resolver
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(d.Logger))
	r.Use(middleware.CORSMiddleware(d.Config.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// USE CASES
	// ======================================================
	loadDashboardUC := ucDashboard.NewLoadAdmin(d.API, d.Logger)
	loadGalleryUC := ucGallery.NewLoadPage(d.API, d.Resolver, d.Logger)
	loadOrdersUC := ucOrders.NewLoadHistory(d.API, d.Accumulator, d.Logger)

	// ======================================================
	// PANELS
	// ======================================================
	productPanel := panels.NewProductPanel(d.API, d.Auditor, d.Logger)
	servicePanel := panels.NewServicePanel(d.API, d.Auditor, d.Logger)
	unavailabilityPanel := panels.NewUnavailabilityPanel(d.API, d.Auditor, d.Logger)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(d.API, d.Logger)
	scheduleHandler := handlers.NewScheduleHandler(d.Registry)
	salonHandler := handlers.NewSalonHandler(d.API)
	productHandler := handlers.NewProductHandler(productPanel)
	serviceHandler := handlers.NewPanelHandler(servicePanel, handlers.PathID)
	unavailabilityHandler := handlers.NewPanelHandler(unavailabilityPanel, handlers.SlotFromBody)
	galleryHandler := handlers.NewGalleryHandler(loadGalleryUC)
	ordersHandler := handlers.NewOrdersHandler(loadOrdersUC)
	adminHandler := handlers.NewAdminHandler(loadDashboardUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.AuditLogs)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(d.Config.JWTSecret))
	{
		api.GET("/me", meHandler.GetMe)

		// ------------------------------
		// SALONS / PRODUCTS
		// ------------------------------
		api.GET("/salons/:id/stylists", salonHandler.Stylists)
		api.GET("/salons/:id/products", productHandler.ListForSalon)
		api.POST("/products", productHandler.Create)
		api.PATCH("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		// ------------------------------
		// GALLERY / ORDERS
		// ------------------------------
		api.GET("/gallery", galleryHandler.Get)
		api.GET("/orders", ordersHandler.List)

		// ------------------------------
		// STYLIST
		// ------------------------------
		stylist := api.Group("/stylist")
		stylist.Use(middleware.RequireRole(middleware.RoleStylist))
		{
			stylist.GET("/schedule", scheduleHandler.Get)
			stylist.POST("/schedule/view", scheduleHandler.SetView)
			stylist.POST("/schedule/next", scheduleHandler.Next)
			stylist.POST("/schedule/previous", scheduleHandler.Previous)
			stylist.GET("/schedule/cancelled", scheduleHandler.Cancelled)

			stylist.GET("/unavailability", unavailabilityHandler.List)
			stylist.POST("/unavailability", unavailabilityHandler.Create)
			stylist.DELETE("/unavailability", unavailabilityHandler.Delete)

			stylist.GET("/services", serviceHandler.List)
			stylist.POST("/services", serviceHandler.Create)
			stylist.PATCH("/services/:id", serviceHandler.Update)
			stylist.DELETE("/services/:id", serviceHandler.Delete)

			stylist.GET("/audit-logs", auditLogsHandler.List)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireRole(middleware.RoleAdmin))
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
		}
	}
}
