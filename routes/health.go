package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/util"
)

func AddHealthCheckRoutes(group *gin.RouterGroup) {
	health := group.Group("/health")
	health.GET("", util.HandlerWrapper(AliveCheck, &util.HandlerOpts{}))
}

func AliveCheck(c *gin.Context) *util.HTTPError {
	c.JSON(http.StatusOK, gin.H{"success": true})
	return nil
}
