package main

import (
	"syncguard/config"
	"syncguard/di"
	"syncguard/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
