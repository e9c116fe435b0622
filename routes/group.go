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

type groupRoutes struct {
	db     db.Database
	groups *controllers.GroupController
}

func AddGroupRoutes(
	group *gin.RouterGroup,
	database db.Database,
	sessions *auth.Sessions,
	groups *controllers.GroupController,
) {
	routes := groupRoutes{db: database, groups: groups}
	viewerAuth := middleware.Auth(database, sessions, &middleware.AuthConfig{LoginNotRequired: true})
	group.GET("/group/:slug", viewerAuth, util.HandlerWrapper(routes.groupPosts, &util.HandlerOpts{}))
}

func (gr *groupRoutes) groupPosts(c *gin.Context) *util.HTTPError {
	blogGroup, err := gr.db.GetGroupBySlug(c, c.Param("slug"))
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if blogGroup == nil {
		return &util.NotFoundHTTPErr
	}

	pageNumber := util.ParsePageNumber(c.Query("page"))
	page, err := app.ListPosts(c, gr.db, &db.PostsQuery{GroupId: &blogGroup.Id}, pageNumber)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}

	c.HTML(http.StatusOK, "group_list.html", baseContext(c, gr.groups, gin.H{
		"group":       blogGroup,
		"description": blogGroup.Description,
		"page_obj":    page,
	}))
	return nil
}
