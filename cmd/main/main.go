package main

import (
	"Backend-Charging/internal/app/config"
	"Backend-Charging/internal/app/repository"
	"Backend-Charging/internal/pkg"

	_ "Backend-Charging/docs"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Charging Station Admin API
// @version 1.0
// @description API for EV charging station back office with JWT authentication and role-based access control

// @contact.name API Support
// @contact.url http://localhost:8080
// @contact.email support@charging-service.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

// @tag.name Users
// @tag.description User management and authentication
// @tag.name Stations
// @tag.description Charging stations management
// @tag.name Orders
// @tag.description Charging orders management
// @tag.name OrderStations
// @tag.description Management of stations within orders
// @tag.name Navigation
// @tag.description Role-filtered sidebar menu
func main() {
	router := gin.Default()

	// Загружаем конфигурацию
	conf, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %v", err)
	}

	// Инициализируем репозиторий
	repo, err := repository.NewRepository(conf)
	if err != nil {
		logrus.Fatalf("error initializing repository: %v", err)
	}
	defer repo.Close()

	// Создаем приложение с конфигурацией
	application := pkg.NewApp(conf, router, repo)

	// Запускаем приложение
	application.RunApp()
}
