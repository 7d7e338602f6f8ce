package router

import "github.com/gin-gonic/gin"

// Module is a feature area that registers its own routes.
type Module interface {
	Register(rg *gin.RouterGroup)
}
