package http

import (
	"github.com/gin-gonic/gin"
)

// PublicRouteGroup defines a group of routes registered on the API group.
type PublicRouteGroup interface {
	// RegisterPublicRoutes registers the routes to the given router group.
	RegisterPublicRoutes(rg *gin.RouterGroup)
}
