package valueobjects

import (
	"unicode"

	"github.com/compiler-aditya/PropTech/internal/shared/errors"
)

const (
	MsgPasswordTooShort      = "Password must be at least 8 characters"
	MsgPasswordTooLong       = "Password must not exceed 72 bytes"
	MsgPasswordNeedsUpper    = "Password must contain at least one uppercase letter"
	MsgPasswordNeedsNumber   = "Password must contain at least one number"
	defaultPasswordMinLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// PasswordPolicy defines the password validation rules applied at sign-up.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireNumber    bool
}

func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:        defaultPasswordMinLength,
		RequireUppercase: true,
		RequireNumber:    true,
	}
}

// ValidatePassword returns a validation AppError naming the first rule broken.
func (p *PasswordPolicy) ValidatePassword(password string) error {
	if len([]rune(password)) < p.MinLength {
		return errors.NewValidationError(MsgPasswordTooShort)
	}
	if len(password) > maxPasswordBytes {
		return errors.NewValidationError(MsgPasswordTooLong)
	}

	var hasUppercase, hasNumber bool
	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUppercase = true
		case unicode.IsNumber(char):
			hasNumber = true
		}
	}

	if p.RequireUppercase && !hasUppercase {
		return errors.NewValidationError(MsgPasswordNeedsUpper)
	}
	if p.RequireNumber && !hasNumber {
		return errors.NewValidationError(MsgPasswordNeedsNumber)
	}
	return nil
}
