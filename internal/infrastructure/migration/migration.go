// Package migration applies the database schema, with goose SQL scripts in
// production and gorm AutoMigrate in development.
package migration

import (
	"embed"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/constants"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

// ScriptsDir is where `migrate create` writes new scripts, relative to the repo root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

//go:embed scripts/*.sql
var embeddedScripts embed.FS

// Strategy defines the interface for different migration strategies
type Strategy interface {
	// Migrate executes the migration strategy
	Migrate(db *gorm.DB) error
	// GetName returns the strategy name
	GetName() string
}

// NewStrategyForEnv picks AutoMigrate for development and goose otherwise.
func NewStrategyForEnv(env string, log logger.Interface) Strategy {
	if strings.EqualFold(env, constants.EnvDevelopment) {
		return NewAutoMigrateStrategy(log)
	}
	return NewGooseStrategy(log)
}

type AutoMigrateStrategy struct {
	logger logger.Interface
}

func NewAutoMigrateStrategy(log logger.Interface) *AutoMigrateStrategy {
	return &AutoMigrateStrategy{logger: log.With("component", "migration.automigrate")}
}

func (s *AutoMigrateStrategy) Migrate(db *gorm.DB) error {
	all := models.All()
	s.logger.Infow("starting auto migration", "models_count", len(all))

	if err := db.AutoMigrate(all...); err != nil {
		s.logger.Errorw("auto migration failed", "error", err)
		return fmt.Errorf("failed to auto migrate: %w", err)
	}

	s.logger.Infow("auto migration completed successfully")
	return nil
}

func (s *AutoMigrateStrategy) GetName() string {
	return "gorm-automigrate"
}
