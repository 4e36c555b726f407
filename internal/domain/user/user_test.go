package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/compiler-aditya/PropTech/internal/domain/user/valueobjects"
	"github.com/compiler-aditya/PropTech/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	email, err := vo.NewEmail("john@demo.com")
	require.NoError(t, err)

	u, err := NewUser("  John Tech ", email, "$2a$10$hash", authorization.RoleTechnician)
	require.NoError(t, err)
	assert.Equal(t, "John Tech", u.Name())

	require.NoError(t, u.SetID(5))
	assert.Equal(t, authorization.Actor{ID: 5, Role: authorization.RoleTechnician}, u.Actor())
	assert.Error(t, u.SetID(6))

	_, err = NewUser("John", email, "$2a$10$hash", "ADMIN")
	assert.Error(t, err)

	_, err = NewUser("", email, "$2a$10$hash", authorization.RoleTenant)
	assert.Error(t, err)
}

func TestUser_Avatar(t *testing.T) {
	email, err := vo.NewEmail("sarah@demo.com")
	require.NoError(t, err)
	u, err := NewUser("Sarah", email, "$2a$10$hash", authorization.RoleTenant)
	require.NoError(t, err)
	assert.False(t, u.HasAvatar())

	_, err = u.ReplaceAvatar("")
	assert.Error(t, err)

	prev, err := u.ReplaceAvatar("local:avatars/one.png")
	require.NoError(t, err)
	assert.Empty(t, prev)

	prev, err = u.ReplaceAvatar("local:avatars/two.png")
	require.NoError(t, err)
	assert.Equal(t, "local:avatars/one.png", prev)
	assert.Equal(t, "local:avatars/two.png", u.AvatarURL())

	assert.Equal(t, "local:avatars/two.png", u.ClearAvatar())
	assert.False(t, u.HasAvatar())
	assert.Empty(t, u.ClearAvatar())
}
