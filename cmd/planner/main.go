package main

import (
	"log"
	"os"

	"github.com/spf13/afero"

	"github.com/vlinks/planner/internal/app"
	"github.com/vlinks/planner/internal/cli"
	"github.com/vlinks/planner/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	a := app.New(cfg, afero.NewOsFs(), logger)

	if err := cli.New(a).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
