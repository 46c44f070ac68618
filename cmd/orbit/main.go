package main

import (
	"fmt"
	"os"

	"Orbit/config"
	"Orbit/pkg/database"
	"Orbit/pkg/log"
	"Orbit/pkg/server"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)
	log.Setup(cfg.Log)

	cliApp := &cli.App{
		Name:  "orbit",
		Usage: "social feed, follow graph and realtime messaging",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http + websocket server",
				Action: func(ctx *cli.Context) error {
					app, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, app)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update database tables",
				Action: func(ctx *cli.Context) error {
					if err := database.Migrate(database.NewDB(cfg)); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
