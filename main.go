package main

import (
	"github.com/Elly0816/Eleazar-Blog/config"
	"github.com/Elly0816/Eleazar-Blog/models"
	"github.com/Elly0816/Eleazar-Blog/routes"
	"github.com/Elly0816/Eleazar-Blog/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	db := config.InitDatabase(&models.User{}, &models.Post{}, &models.Comment{})

	r := routes.SetupRouter(db)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
