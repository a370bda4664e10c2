package routes

import (
	"restaurant-api/handlers"
	"restaurant-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	r.GET("/", handlers.Welcome)
	r.GET("/health", handlers.Health)

	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Catalog reads need no auth
		public.GET("/menu", handlers.ListMenu)
		public.GET("/menu/:id", handlers.GetMenuItem)

		public.GET("/lifecycle", handlers.GetLifecycleInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/auth/me", handlers.GetMe)

		auth.POST("/orders", handlers.PlaceOrder)
		auth.GET("/orders/my", handlers.GetMyOrders)
		auth.GET("/orders/item/:id", handlers.GetOrder)

		auth.POST("/reservations", handlers.CreateReservation)
		auth.GET("/reservations/my", handlers.GetMyReservations)
		auth.GET("/reservations/:id", handlers.GetReservation)
		// Owner-cancel or admin-any; the handler decides which
		auth.PUT("/reservations/:id", handlers.UpdateReservation)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api")
	admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
	{
		admin.POST("/menu", handlers.CreateMenuItem)
		admin.PUT("/menu/:id", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:id", handlers.DeleteMenuItem)

		admin.GET("/orders", handlers.GetAllOrders)
		admin.PUT("/orders/item/:id", handlers.UpdateOrderStatus)
		admin.DELETE("/orders/item/:id", handlers.DeleteOrder)

		admin.GET("/reservations", handlers.GetAllReservations)
		admin.DELETE("/reservations/:id", handlers.DeleteReservation)
	}
}
