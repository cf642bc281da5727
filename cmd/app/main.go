package main

import (
	"os"

	"github.com/zelezara-doo/shop-backend/internal/app"
	config "github.com/zelezara-doo/shop-backend/internal/cfg"
	"github.com/zelezara-doo/shop-backend/pkg/logger"
)

//	@title			Zelezara Shop Backend API
//	@version		1.0
//	@description	Каталог и приём заказов интернет-магазина металлопроката

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						X-Admin-Token

func main() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
