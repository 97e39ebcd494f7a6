package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zninennea/nani-plate-perfect/configs"
	"github.com/zninennea/nani-plate-perfect/middlewares"
	"github.com/zninennea/nani-plate-perfect/pkg/logger"
	"github.com/zninennea/nani-plate-perfect/pkg/realtime"
	"github.com/zninennea/nani-plate-perfect/routes"
)

func main() {
	cfg := configs.LoadConfig()

	log := logger.New("nani")
	defer log.Sync()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatal("connect database failed", zap.Error(err))
	}
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatal("migrate failed", zap.Error(err))
	}
	if err := configs.SeedOwner(db, cfg.OwnerEmail, cfg.OwnerPassword); err != nil {
		log.Fatal("seed owner failed", zap.Error(err))
	}

	hub := realtime.NewHub()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, hub, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info("server listening", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
