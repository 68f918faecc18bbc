package main

import (
	"context"
	"log"

	"github.com/okorotkov/taskpad/internal/server"
	"github.com/okorotkov/taskpad/internal/server/config"
)

func main() {
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
