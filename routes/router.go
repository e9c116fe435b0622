package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/config"
	"github.com/velichko-dev/inkline/controllers"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/middleware"
	"github.com/velichko-dev/inkline/services"
	"github.com/velichko-dev/inkline/util"
)

// NewRouter wires the full HTTP surface.
func NewRouter(
	cfg *config.Config,
	database db.Database,
	sessions *auth.Sessions,
	pageCache *services.PageCache,
	media *services.MediaStore,
	groups *controllers.GroupController,
	metrics *middleware.Metrics,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CountRequests(metrics))

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/media", cfg.MediaRoot)

	AddHealthCheckRoutes(&r.RouterGroup)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	AddAuthRoutes(&r.RouterGroup, database, sessions)
	AddPostRoutes(&r.RouterGroup, database, sessions, pageCache, media, groups, metrics)
	AddGroupRoutes(&r.RouterGroup, database, sessions, groups)
	AddProfileRoutes(&r.RouterGroup, database, sessions, groups, metrics)
	AddFeedRoutes(&r.RouterGroup, database, sessions, groups)

	r.NoRoute(func(c *gin.Context) {
		util.RenderError(c, &util.NotFoundHTTPErr)
	})

	return r
}

// baseContext merges the chrome every page needs with handler context.
func baseContext(c *gin.Context, groups *controllers.GroupController, extra gin.H) gin.H {
	context := gin.H{
		"user":   middleware.GetUser(c),
		"groups": groups.Groups(),
	}
	for key, val := range extra {
		context[key] = val
	}
	return context
}
