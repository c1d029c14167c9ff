package main

import (
	"context"
	"log"
	"os"

	"github.com/lucy1234dev/server/internal/buildinfo"
	"github.com/lucy1234dev/server/internal/server"
	"github.com/lucy1234dev/server/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	app.Run(ctx)

}
