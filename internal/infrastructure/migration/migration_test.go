package migration

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/models"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

func TestNewStrategyForEnv(t *testing.T) {
	log := logger.NewLogger()

	assert.Equal(t, "gorm-automigrate", NewStrategyForEnv("development", log).GetName())
	assert.Equal(t, "goose", NewStrategyForEnv("production", log).GetName())
	assert.Equal(t, "goose", NewStrategyForEnv("test", log).GetName())
}

func TestEmbeddedScripts(t *testing.T) {
	entries, err := fs.ReadDir(embeddedScripts, "scripts")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, e := range entries {
		data, err := fs.ReadFile(embeddedScripts, "scripts/"+e.Name())
		require.NoError(t, err)
		body := string(data)
		assert.True(t, strings.Contains(body, "-- +goose Up"), e.Name())
		assert.True(t, strings.Contains(body, "-- +goose Down"), e.Name())
	}
}

func TestInitScriptCoversEveryTable(t *testing.T) {
	data, err := fs.ReadFile(embeddedScripts, "scripts/00001_init_schema.sql")
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	for _, m := range models.All() {
		stmt := &gorm.Statement{DB: db}
		require.NoError(t, stmt.Parse(m))
		assert.Contains(t, string(data), "CREATE TABLE IF NOT EXISTS "+stmt.Schema.Table+" (")
	}
}

func TestAutoMigrateStrategy(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)

	require.NoError(t, NewAutoMigrateStrategy(logger.NewLogger()).Migrate(db))
	assert.True(t, db.Migrator().HasTable(&models.TicketModel{}))
	assert.True(t, db.Migrator().HasTable(&models.NotificationModel{}))
}
