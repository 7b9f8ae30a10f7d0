package main

import (
	"context"
	"log"
	"os"

	"github.com/provafacil/provafacil/internal/cli"
	"github.com/provafacil/provafacil/internal/config"
	"github.com/provafacil/provafacil/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(context.Background())
}
