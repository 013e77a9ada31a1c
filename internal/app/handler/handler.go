package handler

import (
	"Backend-Charging/internal/app/config"
	"Backend-Charging/internal/app/middleware"
	"Backend-Charging/internal/app/repository"

	"github.com/gin-gonic/gin"
)

// RegisterHandlers регистрирует все обработчики
func RegisterHandlers(router *gin.Engine, cfg *config.Config, repo *repository.Repository) {
	apiRouter := router.Group("/api")

	// Создаем хендлеры
	stationHandler := NewStationHandler(repo)
	orderHandler := NewOrderHandler(repo)
	orderStationHandler := NewOrderStationHandler(repo)
	userHandler := NewUserHandler(repo, cfg)
	navigationHandler := NewNavigationHandler()

	// Public routes - доступны без аутентификации
	public := apiRouter.Group("")
	{
		// Аутентификация
		public.POST("/users/login", userHandler.Login)
		public.POST("/users/register", userHandler.Register)
		public.POST("/users/refresh", userHandler.RefreshToken)

		// Просмотр станций (доступно всем)
		public.GET("/stations", stationHandler.GetStations)
		public.GET("/stations/:id", stationHandler.GetStation)
	}

	// Меню строится по правам: гость получает публичные пункты
	apiRouter.GET("/navigation", middleware.OptionalAuth(cfg, repo), navigationHandler.GetNavigation)

	// Protected routes - требуют аутентификации
	protected := apiRouter.Group("")
	protected.Use(middleware.AuthMiddleware(cfg, repo))
	{
		// Пользовательские endpoints
		protected.GET("/users/profile", userHandler.GetProfile)
		protected.PUT("/users/profile", userHandler.UpdateProfile)
		protected.POST("/users/logout", userHandler.Logout)

		// Работа с заявками (требует аутентификации)
		protected.GET("/orders", orderHandler.GetOrders)
		protected.GET("/orders/cart", orderHandler.GetOrderCart)
		protected.GET("/orders/:id", orderHandler.GetOrder)
		protected.POST("/stations/add-to-order", stationHandler.AddStationToOrder)
		protected.PUT("/orders/:id/form", orderHandler.FormOrder)
		protected.DELETE("/orders/:id", orderHandler.DeleteOrder)

		// Обновление полей заявки (только создатель)
		protected.PUT("/orders/:id", orderHandler.UpdateOrderFields)

		// Управление станциями в заявке
		protected.DELETE("/order-stations", orderStationHandler.RemoveFromOrder)
		protected.PUT("/order-stations", orderStationHandler.UpdateOrderStation)
	}

	// Moderator only routes - требуют роли модератора
	moderator := apiRouter.Group("")
	moderator.Use(middleware.AuthMiddleware(cfg, repo), middleware.ModeratorOnly())
	{
		// Управление станциями (CRUD)
		moderator.POST("/stations", stationHandler.CreateStation)
		moderator.PUT("/stations/:id", stationHandler.UpdateStation)
		moderator.DELETE("/stations/:id", stationHandler.DeleteStation)
		moderator.POST("/stations/:id/image", stationHandler.UpdateStationPhoto)

		// Модерация заявок
		moderator.PUT("/orders/:id/complete", orderHandler.CompleteOrder)
		moderator.PUT("/orders/:id/reject", orderHandler.RejectOrder)
	}
}
