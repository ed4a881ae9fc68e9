package main

import (
	"context"

	"github.com/DarshanchGIT/wordverse/internal/client/cli"
	"github.com/DarshanchGIT/wordverse/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app := cli.NewApp(cfg)
	app.Run(ctx)
}
