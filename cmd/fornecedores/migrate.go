package main

import (
	"context"
	_ "embed"
	"fmt"

	"fornecedores/internal/db"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

//go:embed schema.sql
var schemaSQL string

var migrateCommand = &cli.Command{
	Name:  "migrate",
	Usage: "Create the schema and tables if they do not exist",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		pool, err := db.Connect(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer pool.Close()

		if _, err := pool.Exec(ctx, schemaSQL); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}

		logrus.Info("Schema applied")

		return nil
	},
}
