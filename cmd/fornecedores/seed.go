package main

import (
	"context"
	"fmt"

	"fornecedores/internal/db"
	"fornecedores/internal/seed"
	"fornecedores/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Seed the database with initial data",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "admin-email",
			Usage: "Email for the bootstrap super_admin profile",
			Value: "admin@example.ao",
		},
		&cli.StringFlag{
			Name:  "admin-name",
			Usage: "Display name for the bootstrap super_admin profile",
			Value: "Administrador",
		},
		&cli.IntFlag{
			Name:  "suppliers",
			Usage: "Number of fake suppliers to create",
			Value: 0,
		},
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Delete previously seeded fake suppliers first",
		},
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "Pretty-print each seeded record",
		},
	},
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

		logrus.Info("Connected to database")

		userRepo := store.NewUserRepository(pool)
		folderRepo := store.NewFolderRepository(pool, logrus.StandardLogger())
		supplierRepo := store.NewSupplierRepository(pool)

		logrus.Info("Seeding admin user...")
		if err := seed.SeedAdminUser(ctx, userRepo, c.String("admin-email"), c.String("admin-name")); err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}

		logrus.Info("Seeding folders...")
		if err := seed.SeedFolders(ctx, folderRepo); err != nil {
			return fmt.Errorf("failed to seed folders: %w", err)
		}

		if count := c.Int("suppliers"); count > 0 {
			logrus.Info("Seeding fake suppliers...")
			if err := seed.SeedFakeSuppliers(ctx, pool, supplierRepo, count, c.Bool("reset"), c.Bool("verbose")); err != nil {
				return fmt.Errorf("failed to seed fake suppliers: %w", err)
			}
		}

		logrus.Info("Seed complete")

		return nil
	},
}
