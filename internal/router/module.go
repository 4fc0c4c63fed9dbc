package router

import "github.com/gin-gonic/gin"

// Module is a self-contained feature area (accounts, tasks, debug) that
// mounts its own routes, including any per-route middleware, under the
// shared API group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
