package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/compiler-aditya/PropTech/internal/infrastructure/persistence/testdb"
	"github.com/compiler-aditya/PropTech/internal/infrastructure/repository"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func TestDemoFixture(t *testing.T) {
	f, err := DemoFixture()
	require.NoError(t, err)

	assert.Equal(t, "password123", f.Password)
	assert.Len(t, f.Users, 6)
	assert.Len(t, f.Properties, 3)
}

func TestParseFixture_RequiresPassword(t *testing.T) {
	_, err := ParseFixture([]byte("users: []\n"))
	assert.Error(t, err)
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	db := testdb.New(t)
	log := logger.NewLogger()
	userRepo := repository.NewUserRepository(db, log)
	propertyRepo := repository.NewPropertyRepository(db)
	ctx := context.Background()

	f, err := DemoFixture()
	require.NoError(t, err)

	seeder := NewSeeder(userRepo, propertyRepo, plainHasher{}, log)

	first, err := seeder.Run(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, 6, first.UsersCreated)
	assert.Equal(t, 3, first.PropertiesCreated)

	second, err := seeder.Run(ctx, f)
	require.NoError(t, err)
	assert.Zero(t, second.UsersCreated)
	assert.Zero(t, second.PropertiesCreated)

	technicians, err := userRepo.ListByRole(ctx, authorization.RoleTechnician)
	require.NoError(t, err)
	require.Len(t, technicians, 2)
	assert.Equal(t, "John Smith", technicians[0].Name())

	manager, err := userRepo.GetByEmail(ctx, "admin@demo.com")
	require.NoError(t, err)
	require.NotNil(t, manager)
	assert.Equal(t, "hashed:password123", manager.PasswordHash())

	props, err := propertyRepo.ListByManager(ctx, manager.ID())
	require.NoError(t, err)
	assert.Len(t, props, 3)
}

func TestSeeder_UnknownManager(t *testing.T) {
	db := testdb.New(t)
	log := logger.NewLogger()
	seeder := NewSeeder(repository.NewUserRepository(db, log), repository.NewPropertyRepository(db), plainHasher{}, log)

	f := &Fixture{
		Password: "x",
		Properties: []PropertyFixture{
			{Name: "Nowhere", Address: "1 Missing St", Manager: "ghost@demo.com"},
		},
	}
	_, err := seeder.Run(context.Background(), f)
	assert.Error(t, err)
}
