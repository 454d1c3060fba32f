package main

import (
	"ynaut/pkg/config"
	"ynaut/services/auth/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Ynaut Auth Service API
// @version         1.0
// @description     Registration, login and profile management

// @host      localhost:8001
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
