package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"songbook/internal/actions"
	"songbook/internal/config"
	"songbook/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("error loading .env file: %v", err)
	}
	cfg := config.NewConfig()
	logging.Setup(os.Stderr, cfg.Log.Level)

	app := &cli.App{
		Name:           "songbook",
		Usage:          "Songbook builds, displays and exports playlists of songs.",
		Version:        version,
		DefaultCommand: "demo",
		Commands:       actions.Commands(),
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
