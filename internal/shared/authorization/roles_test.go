package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserRole(t *testing.T) {
	for _, s := range []string{"TENANT", "MANAGER", "TECHNICIAN"} {
		role, err := ParseUserRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	_, err := ParseUserRole("admin")
	assert.Error(t, err)
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		actor    *Actor
		wantCode int
	}{
		{"manager allowed", &Actor{ID: 1, Role: RoleManager}, http.StatusOK},
		{"tenant rejected", &Actor{ID: 2, Role: RoleTenant}, http.StatusForbidden},
		{"anonymous rejected", nil, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			_, engine := gin.CreateTestContext(w)
			engine.GET("/properties", func(c *gin.Context) {
				if tt.actor != nil {
					SetActor(c, *tt.actor)
				}
				c.Next()
			}, RequireRole(RoleManager), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/properties", nil))

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}
