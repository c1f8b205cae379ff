package main

import (
	"log"

	"github.com/quotecraft/quotecraft-backend/config"
	"github.com/quotecraft/quotecraft-backend/internal/bootstrap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:   "quotecraft-backend",
		Version:       cfg.App.Version,
		DataDir:       cfg.Storage.DataDir,
		QuotesDir:     cfg.QuotesDir(),
		ProductsFile:  cfg.ProductsFile(),
		CustomersFile: cfg.CustomersFile(),
		SalesTaxFile:  cfg.SalesTaxFile(),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
