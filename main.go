package main

import (
	"github.com/campustrack/achievement_service/config"
	"github.com/campustrack/achievement_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
