package main

import (
	"context"
	"log"

	"github.com/taranjotsinghW28/Note-Nest/internal/bootstrap"
	"github.com/taranjotsinghW28/Note-Nest/internal/config"
	"github.com/taranjotsinghW28/Note-Nest/internal/server"
	"github.com/taranjotsinghW28/Note-Nest/internal/tracer"
	"github.com/taranjotsinghW28/Note-Nest/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
