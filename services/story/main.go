package main

import (
	"ynaut/pkg/config"
	"ynaut/services/story/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Ynaut Story Service API
// @version         1.0
// @description     Ephemeral 24-hour stories with per-viewer view counts

// @host      localhost:8004
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	a, err := app.NewApp(cfg)
	if err != nil {
		panic(err)
	}

	if err := a.Run(); err != nil {
		panic(err)
	}

	a.Wait()
	_ = a.Shutdown()
}
