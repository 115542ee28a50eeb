package main

import (
	"log"
	"time"

	"se-server/config"
	"se-server/di"
)

func main() {
	cfg, err := config.Load(config.DefaultConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container := di.NewContainer(cfg)
	defer container.AlertPublisher.Close()

	log.Println("starting forecast refresher job")
	container.ForecastRefresherService.StartPeriodicJob(
		time.Duration(cfg.GetRefreshIntervalMinutes()) * time.Minute,
	)

	log.Println("starting server")
	container.SmartElectroHttpServer.Start()
}
