package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/compiler-aditya/PropTech/internal/domain/permission"
	propertyhandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/property"
	userhandlers "github.com/compiler-aditya/PropTech/internal/interfaces/http/handlers/user"
	"github.com/compiler-aditya/PropTech/internal/interfaces/http/middleware"
)

type PropertyRouteConfig struct {
	PropertyHandler      *propertyhandlers.PropertyHandler
	UserHandler          *userhandlers.UserHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupPropertyRoutes registers the property endpoints and the technician
// directory managers pick assignees from.
func SetupPropertyRoutes(api *gin.RouterGroup, config *PropertyRouteConfig) {
	perm := config.PermissionMiddleware

	properties := api.Group("/properties")
	{
		properties.POST("",
			perm.RequirePermission(permission.ResourceProperty, permission.ActionManage),
			config.PropertyHandler.CreateProperty)
		properties.GET("",
			perm.RequirePermission(permission.ResourceProperty, permission.ActionManage),
			config.PropertyHandler.ListProperties)
		properties.GET("/all",
			perm.RequirePermission(permission.ResourceProperty, permission.ActionList),
			config.PropertyHandler.ListOptions)
		properties.GET("/:id",
			perm.RequirePermission(permission.ResourceProperty, permission.ActionManage),
			config.PropertyHandler.GetProperty)
	}

	api.GET("/technicians",
		perm.RequirePermission(permission.ResourceTechnician, permission.ActionList),
		config.UserHandler.ListTechnicians)
}
