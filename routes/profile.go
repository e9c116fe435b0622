package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/app"
	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/controllers"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/middleware"
	"github.com/velichko-dev/inkline/model"
	"github.com/velichko-dev/inkline/util"
)

type profileRoutes struct {
	db      db.Database
	groups  *controllers.GroupController
	metrics *middleware.Metrics
}

func AddProfileRoutes(
	group *gin.RouterGroup,
	database db.Database,
	sessions *auth.Sessions,
	groups *controllers.GroupController,
	metrics *middleware.Metrics,
) {
	routes := profileRoutes{db: database, groups: groups, metrics: metrics}

	viewerAuth := middleware.Auth(database, sessions, &middleware.AuthConfig{LoginNotRequired: true})
	requiredAuth := middleware.Auth(database, sessions, &middleware.AuthConfig{})

	group.GET("/profile/:username", viewerAuth, util.HandlerWrapper(routes.profile, &util.HandlerOpts{}))
	group.GET("/profile/:username/follow", requiredAuth, util.HandlerWrapper(routes.follow, &util.HandlerOpts{}))
	group.GET("/profile/:username/unfollow", requiredAuth, util.HandlerWrapper(routes.unfollow, &util.HandlerOpts{}))
}

func (pr *profileRoutes) profile(c *gin.Context) *util.HTTPError {
	author, httpErr := pr.resolveAuthor(c)
	if httpErr != nil {
		return httpErr
	}

	pageNumber := util.ParsePageNumber(c.Query("page"))
	page, err := app.ListPosts(c, pr.db, &db.PostsQuery{AuthorId: &author.Id}, pageNumber)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}

	// anonymous viewers always see "not following"
	following := false
	if viewer := middleware.GetUser(c); viewer != nil {
		following, err = pr.db.IsFollowing(c, &model.Follow{
			FollowerId: viewer.Id,
			AuthorId:   author.Id,
		})
		if err != nil {
			return util.BuildDbHTTPErr(err)
		}
	}

	c.HTML(http.StatusOK, "profile.html", baseContext(c, pr.groups, gin.H{
		"author":    author,
		"following": following,
		"page_obj":  page,
	}))
	return nil
}

func (pr *profileRoutes) follow(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	author, httpErr := pr.resolveAuthor(c)
	if httpErr != nil {
		return httpErr
	}

	// no self-follow; duplicate edges are a no-op in the store
	if author.Id != user.Id {
		if err := pr.db.CreateFollow(c, &model.Follow{
			FollowerId: user.Id,
			AuthorId:   author.Id,
		}); err != nil {
			return util.BuildDbHTTPErr(err)
		}
		pr.metrics.FollowRequests.Inc()
	}
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
	return nil
}

func (pr *profileRoutes) unfollow(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	author, httpErr := pr.resolveAuthor(c)
	if httpErr != nil {
		return httpErr
	}

	// deleting a missing edge is a no-op, not an error
	if err := pr.db.DeleteFollow(c, &model.Follow{
		FollowerId: user.Id,
		AuthorId:   author.Id,
	}); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	pr.metrics.UnfollowRequests.Inc()
	c.Redirect(http.StatusFound, "/profile/"+author.Username)
	return nil
}

func (pr *profileRoutes) resolveAuthor(c *gin.Context) (*model.User, *util.HTTPError) {
	author, err := pr.db.GetUserByUsername(c, c.Param("username"))
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if author == nil {
		return nil, &util.NotFoundHTTPErr
	}
	return author, nil
}
