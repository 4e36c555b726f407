// Package seeds loads the demo fixture: one manager, tenants, technicians and
// their properties. Re-running it skips rows that already exist.
package seeds

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/compiler-aditya/PropTech/internal/domain/property"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	uservo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

//go:embed fixtures/demo.yaml
var demoFixture []byte

type Fixture struct {
	Password   string            `yaml:"password"`
	Users      []UserFixture     `yaml:"users"`
	Properties []PropertyFixture `yaml:"properties"`
}

type UserFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`
}

type PropertyFixture struct {
	Name    string `yaml:"name"`
	Address string `yaml:"address"`
	Units   int    `yaml:"units"`
	Manager string `yaml:"manager"`
}

// PasswordHasher hashes the shared demo password.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// Result counts what a run inserted.
type Result struct {
	UsersCreated      int
	PropertiesCreated int
}

func DemoFixture() (*Fixture, error) {
	return ParseFixture(demoFixture)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	if f.Password == "" {
		return nil, fmt.Errorf("seed fixture has no password")
	}
	return &f, nil
}

type Seeder struct {
	userRepo     user.Repository
	propertyRepo property.Repository
	hasher       PasswordHasher
	logger       logger.Interface
}

func NewSeeder(
	userRepo user.Repository,
	propertyRepo property.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *Seeder {
	return &Seeder{
		userRepo:     userRepo,
		propertyRepo: propertyRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (s *Seeder) Run(ctx context.Context, f *Fixture) (*Result, error) {
	s.logger.Infow("seeding demo data", "users", len(f.Users), "properties", len(f.Properties))

	hash, err := s.hasher.Hash(f.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}

	result := &Result{}
	byEmail := make(map[string]*user.User, len(f.Users))

	for _, uf := range f.Users {
		u, created, err := s.ensureUser(ctx, uf, hash)
		if err != nil {
			return nil, err
		}
		if created {
			result.UsersCreated++
		}
		byEmail[u.Email().String()] = u
	}

	for _, pf := range f.Properties {
		created, err := s.ensureProperty(ctx, pf, byEmail)
		if err != nil {
			return nil, err
		}
		if created {
			result.PropertiesCreated++
		}
	}

	s.logger.Infow("seeding completed",
		"users_created", result.UsersCreated,
		"properties_created", result.PropertiesCreated)
	return result, nil
}

func (s *Seeder) ensureUser(ctx context.Context, uf UserFixture, hash string) (*user.User, bool, error) {
	email, err := uservo.NewEmail(uf.Email)
	if err != nil {
		return nil, false, fmt.Errorf("seed user %q: %w", uf.Name, err)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		s.logger.Debugw("seed user already exists", "email", email.String())
		return existing, false, nil
	}

	role, err := authorization.ParseUserRole(uf.Role)
	if err != nil {
		return nil, false, fmt.Errorf("seed user %q: %w", uf.Name, err)
	}
	u, err := user.NewUser(uf.Name, email, hash, role)
	if err != nil {
		return nil, false, fmt.Errorf("seed user %q: %w", uf.Name, err)
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *Seeder) ensureProperty(ctx context.Context, pf PropertyFixture, byEmail map[string]*user.User) (bool, error) {
	existing, err := s.propertyRepo.GetByName(ctx, pf.Name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		s.logger.Debugw("seed property already exists", "name", pf.Name)
		return false, nil
	}

	manager, ok := byEmail[pf.Manager]
	if !ok || !manager.Role().IsManager() {
		return false, fmt.Errorf("seed property %q: manager %q is not a seeded manager", pf.Name, pf.Manager)
	}

	p, err := property.NewProperty(pf.Name, pf.Address, pf.Units, manager.ID())
	if err != nil {
		return false, fmt.Errorf("seed property %q: %w", pf.Name, err)
	}
	if err := s.propertyRepo.Create(ctx, p); err != nil {
		return false, err
	}
	return true, nil
}
