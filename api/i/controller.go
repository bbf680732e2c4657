package i

import "github.com/gin-gonic/gin"

// Controller registers its routes under the versioned API group.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}

// RootController is implemented by controllers that also serve routes
// outside the versioned API group.
type RootController interface {
	RegisterRoot(*gin.Engine)
}
