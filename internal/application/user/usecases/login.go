package usecases

import (
	"context"
	"strings"

	"github.com/compiler-aditya/PropTech/internal/application/user/dto"
	"github.com/compiler-aditya/PropTech/internal/domain/user"
	"github.com/compiler-aditya/PropTech/internal/shared/errors"
	"github.com/compiler-aditya/PropTech/internal/shared/logger"
)

const MsgInvalidCredentials = "Invalid email or password"

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordVerifier
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordVerifier,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Execute answers an unknown email and a wrong password identically, including
// the time spent hashing.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.LoginResultDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, errors.NewInternalError("failed to sign in")
	}

	if existing == nil {
		_ = uc.hasher.VerifyNothing(cmd.Password)
		uc.logger.Warnw("login failed", "reason", "unknown email")
		return nil, errors.NewInvalidCredentialsError(MsgInvalidCredentials)
	}

	if err := uc.hasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("login failed", "reason", "wrong password", "user_id", existing.ID())
		return nil, errors.NewInvalidCredentialsError(MsgInvalidCredentials)
	}

	token, expiresAt, err := uc.tokens.Generate(existing.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "user_id", existing.ID())
		return nil, errors.NewInternalError("failed to sign in")
	}

	uc.logger.Infow("user logged in successfully", "user_id", existing.ID(), "role", existing.Role())

	return &dto.LoginResultDTO{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        dto.ToUserDTO(existing),
	}, nil
}
