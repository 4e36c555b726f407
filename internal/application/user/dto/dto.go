package dto

import (
	"fmt"
	"time"

	"github.com/compiler-aditya/PropTech/internal/domain/user"
)

type UserDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type LoginResultDTO struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        *UserDTO  `json:"user"`
}

// TechnicianDTO is a technician option for assignment, with the number of
// tickets they currently hold in ASSIGNED or IN_PROGRESS.
type TechnicianDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ActiveTickets int64  `json:"active_tickets"`
}

func ToUserDTO(u *user.User) *UserDTO {
	if u == nil {
		return nil
	}
	out := &UserDTO{
		ID:   u.ID(),
		Name: u.Name(),
		Role: u.Role().String(),
	}
	if u.Email() != nil {
		out.Email = u.Email().String()
	}
	if u.HasAvatar() {
		out.AvatarURL = AvatarPath(u.ID())
	}
	return out
}

// AvatarPath is the proxied download path of a profile photo.
func AvatarPath(userID uint) string {
	return fmt.Sprintf("/api/users/%d/avatar", userID)
}
