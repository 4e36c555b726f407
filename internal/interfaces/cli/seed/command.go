package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/auth"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/config"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/database"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/seeds"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/repository"
	"github.com/compiler-aditya/PropTech/internal/interfaces/cli/server"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

var (
	env         string
	fixturePath string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load demo users and properties",
		Long:  `Insert the demo manager, tenants, technicians and properties. Rows that already exist are left untouched.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&fixturePath, "fixture", "f", "", "YAML fixture to load instead of the built-in demo data")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(server.MapEnvToGinMode(env))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	fixture, err := loadFixture()
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	seeder := seeds.NewSeeder(
		repository.NewUserRepository(db, log),
		repository.NewPropertyRepository(db),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	result, err := seeder.Run(context.Background(), fixture)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d users and %d properties\n", result.UsersCreated, result.PropertiesCreated)
	return nil
}

func loadFixture() (*seeds.Fixture, error) {
	if fixturePath == "" {
		return seeds.DemoFixture()
	}
	data, err := os.ReadFile(fixturePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return seeds.ParseFixture(data)
}
