package main

import (
	"context"
	"log"

	"github.com/okorotkov/taskpad/internal/client/cli"
	"github.com/okorotkov/taskpad/internal/client/config"
	"github.com/okorotkov/taskpad/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, logging.New())
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
