package usecases

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	vo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const (
	MsgNameTooShort = "Name must be at least 2 characters"
	MsgInvalidEmail = "Invalid email address"
	MsgInvalidRole  = "Role must be TENANT, MANAGER or TECHNICIAN"
	MsgEmailTaken   = "An account with this email already exists"
)

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	// Role defaults to TENANT when empty.
	Role string
}

// RegisterUseCase creates an account and signs it in.
type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	policy   *vo.PasswordPolicy
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		policy:   vo.DefaultPasswordPolicy(),
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.LoginResultDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, errors.NewValidationError(MsgNameTooShort)
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(MsgInvalidEmail)
	}

	if err := uc.policy.ValidatePassword(cmd.Password); err != nil {
		return nil, err
	}

	role := authorization.RoleTenant
	if cmd.Role != "" {
		role = authorization.UserRole(cmd.Role)
		if !role.IsValid() {
			return nil, errors.NewValidationError(MsgInvalidRole)
		}
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}
	if existing != nil {
		return nil, errors.NewConflictError(MsgEmailTaken)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	newUser, err := user.NewUser(name, email, hash, role)
	if err != nil {
		uc.logger.Errorw("failed to create user aggregate", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError(MsgEmailTaken)
		}
		uc.logger.Errorw("failed to create user in database", "error", err)
		return nil, errors.NewInternalError("failed to create account")
	}

	token, expiresAt, err := uc.tokens.Generate(newUser.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", newUser.ID())
		return nil, errors.NewInternalError("account created, but signing in failed")
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID(), "role", role)

	return &dto.LoginResultDTO{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserDTO(newUser),
	}, nil
}
