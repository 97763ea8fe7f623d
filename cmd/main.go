package main

import (
	"github.com/gin-gonic/gin"

	"github.com/riskaamelia-wd/sumq/internal/app"
	"github.com/riskaamelia-wd/sumq/internal/config"
)

func main() {
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
