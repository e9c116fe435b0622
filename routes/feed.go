package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/app"
	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/controllers"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/middleware"
	"github.com/velichko-dev/inkline/util"
)

type feedRoutes struct {
	db     db.Database
	groups *controllers.GroupController
}

func AddFeedRoutes(
	group *gin.RouterGroup,
	database db.Database,
	sessions *auth.Sessions,
	groups *controllers.GroupController,
) {
	routes := feedRoutes{db: database, groups: groups}
	feed := group.Group("/follow", middleware.Auth(database, sessions, &middleware.AuthConfig{}))
	feed.GET("", util.HandlerWrapper(routes.followFeed, &util.HandlerOpts{}))
}

func (fr *feedRoutes) followFeed(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	pageNumber := util.ParsePageNumber(c.Query("page"))
	page, err := app.FeedForUser(c, fr.db, user, pageNumber)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "follow.html", baseContext(c, fr.groups, gin.H{
		"page_obj": page,
		"follow":   true,
	}))
	return nil
}
