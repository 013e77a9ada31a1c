package pkg

import (
	"Backend-Charging/internal/app/config"
	"Backend-Charging/internal/app/handler"
	"Backend-Charging/internal/app/repository"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// App собирает конфигурацию, роутер и репозиторий в готовое приложение
type App struct {
	cfg    *config.Config
	router *gin.Engine
	repo   *repository.Repository
}

func NewApp(cfg *config.Config, router *gin.Engine, repo *repository.Repository) *App {
	return &App{
		cfg:    cfg,
		router: router,
		repo:   repo,
	}
}

// RunApp регистрирует обработчики и запускает HTTP сервер
func (a *App) RunApp() {
	logrus.Info("Server start up")

	handler.RegisterHandlers(a.router, a.cfg, a.repo)

	// Swagger UI
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := fmt.Sprintf("%s:%d", a.cfg.ServiceHost, a.cfg.ServicePort)
	if err := a.router.Run(addr); err != nil {
		logrus.Fatalf("error running server: %v", err)
	}

	logrus.Info("Server down")
}
