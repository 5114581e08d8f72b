package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	api "studio/admin/api/http"
	"studio/admin/config"
	"studio/admin/log"
	"studio/admin/system"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Setup(cfg.Log.Level, cfg.Log.File)

	db, err := system.Open(cfg.Database.URL, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := system.Migrate(db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	e := gin.Default()
	e.Use(cors.Default())
	api.Routers(e.Group("/"), db)

	log.Infof("listening on %s", cfg.Server.ListenAddr)
	if err := e.Run(cfg.Server.ListenAddr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
