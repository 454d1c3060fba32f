package main

import (
	"ynaut/pkg/config"
	"ynaut/services/channel/internal/app"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// @title           Ynaut Channel Service API
// @version         1.0
// @description     Channel directory, subscriptions and channel post feeds

// @host      localhost:8002
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
