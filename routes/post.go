package routes

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/app"
	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/controllers"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/middleware"
	"github.com/velichko-dev/inkline/model"
	"github.com/velichko-dev/inkline/services"
	"github.com/velichko-dev/inkline/util"
)

type postRoutes struct {
	db      db.Database
	media   *services.MediaStore
	groups  *controllers.GroupController
	metrics *middleware.Metrics
}

func AddPostRoutes(
	group *gin.RouterGroup,
	database db.Database,
	sessions *auth.Sessions,
	pageCache *services.PageCache,
	media *services.MediaStore,
	groups *controllers.GroupController,
	metrics *middleware.Metrics,
) {
	routes := postRoutes{db: database, media: media, groups: groups, metrics: metrics}

	viewerAuth := middleware.Auth(database, sessions, &middleware.AuthConfig{LoginNotRequired: true})
	requiredAuth := middleware.Auth(database, sessions, &middleware.AuthConfig{})

	group.GET("/",
		middleware.CachePage(pageCache),
		viewerAuth,
		util.HandlerWrapper(routes.index, &util.HandlerOpts{}))

	posts := group.Group("/posts", viewerAuth)
	posts.GET("/:id", util.HandlerWrapper(routes.postDetail, &util.HandlerOpts{}))

	create := group.Group("/create", requiredAuth)
	create.GET("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))
	create.POST("", util.HandlerWrapper(routes.createPost, &util.HandlerOpts{}))

	authed := group.Group("/posts", requiredAuth)
	authed.GET("/:id/edit", util.HandlerWrapper(routes.editPost, &util.HandlerOpts{}))
	authed.POST("/:id/edit", util.HandlerWrapper(routes.editPost, &util.HandlerOpts{}))
	authed.POST("/:id/delete", util.HandlerWrapper(routes.deletePost, &util.HandlerOpts{}))
	authed.POST("/:id/comment", util.HandlerWrapper(routes.addComment, &util.HandlerOpts{}))
}

func (pr *postRoutes) index(c *gin.Context) *util.HTTPError {
	pageNumber := util.ParsePageNumber(c.Query("page"))
	page, err := app.ListPosts(c, pr.db, &db.PostsQuery{}, pageNumber)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "index.html", baseContext(c, pr.groups, gin.H{
		"title":    "inkline",
		"page_obj": page,
		"index":    true,
	}))
	return nil
}

func (pr *postRoutes) postDetail(c *gin.Context) *util.HTTPError {
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}
	comments, err := pr.db.GetCommentsForPost(c, post.Id)
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.HTML(http.StatusOK, "post_detail.html", baseContext(c, pr.groups, gin.H{
		"post":     post,
		"group":    post.Group,
		"comments": comments,
	}))
	return nil
}

// postForm carries a create/edit submission. The group comes over as a
// string so an empty select option stays valid.
type postForm struct {
	Text  string `form:"text"`
	Group string `form:"group"`
}

func (pr *postRoutes) createPost(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	if c.Request.Method != http.MethodPost {
		pr.renderPostForm(c, &postForm{}, false, "")
		return nil
	}

	form, groupId, formErr := pr.bindPostForm(c)
	if formErr != "" {
		pr.renderPostForm(c, form, false, formErr)
		return nil
	}

	imagePath, imageErr := pr.saveUploadedImage(c)
	if imageErr != "" {
		pr.renderPostForm(c, form, false, imageErr)
		return nil
	}

	if _, err := pr.db.CreatePost(c, &db.CreatePost{
		AuthorId: user.Id,
		Text:     util.XSSSanitize(form.Text),
		Image:    imagePath,
		GroupId:  groupId,
	}); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	pr.metrics.PostsCreated.Inc()
	c.Redirect(http.StatusFound, "/profile/"+user.Username)
	return nil
}

func (pr *postRoutes) editPost(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}

	detailURL := fmt.Sprintf("/posts/%d", post.Id)
	if !post.CanEdit(user) {
		// silent authorization failure: back to the detail view
		c.Redirect(http.StatusFound, detailURL)
		return nil
	}

	if c.Request.Method != http.MethodPost {
		form := &postForm{Text: post.Text}
		if post.Group != nil {
			form.Group = fmt.Sprintf("%d", post.Group.Id)
		}
		pr.renderPostForm(c, form, true, "")
		return nil
	}

	form, groupId, formErr := pr.bindPostForm(c)
	if formErr != "" {
		pr.renderPostForm(c, form, true, formErr)
		return nil
	}

	imagePath, imageErr := pr.saveUploadedImage(c)
	if imageErr != "" {
		pr.renderPostForm(c, form, true, imageErr)
		return nil
	}

	if err := pr.db.UpdatePost(c, post.Id, &db.UpdatePost{
		Text:    util.XSSSanitize(form.Text),
		Image:   imagePath,
		GroupId: groupId,
	}); err != nil {
		return util.BuildDbHTTPErr(err)
	}
	c.Redirect(http.StatusFound, detailURL)
	return nil
}

func (pr *postRoutes) deletePost(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}

	if post.CanEdit(user) {
		if err := pr.db.DeletePost(c, post.Id); err != nil {
			return util.BuildDbHTTPErr(err)
		}
	}
	// same redirect whether or not anything was deleted
	c.Redirect(http.StatusFound, "/profile/"+post.Author.Username)
	return nil
}

func (pr *postRoutes) addComment(c *gin.Context) *util.HTTPError {
	user := middleware.MustGetUser(c)
	post, httpErr := pr.resolvePost(c)
	if httpErr != nil {
		return httpErr
	}

	text := strings.TrimSpace(c.PostForm("text"))
	if text != "" {
		if _, err := pr.db.CreateComment(c, &db.CreateComment{
			PostId:   post.Id,
			AuthorId: user.Id,
			Text:     util.XSSSanitize(text),
		}); err != nil {
			return util.BuildDbHTTPErr(err)
		}
		pr.metrics.CommentsCreated.Inc()
	}
	// invalid submissions are dropped without surfacing an error
	c.Redirect(http.StatusFound, fmt.Sprintf("/posts/%d", post.Id))
	return nil
}

func (pr *postRoutes) resolvePost(c *gin.Context) (post *model.Post, httpErr *util.HTTPError) {
	id, err := util.ParseId(c.Param("id"))
	if err != nil {
		return nil, &util.NotFoundHTTPErr
	}
	post, err = pr.db.GetPostById(c, id)
	if err != nil {
		return nil, util.BuildDbHTTPErr(err)
	}
	if post == nil {
		return nil, &util.NotFoundHTTPErr
	}
	return post, nil
}

func (pr *postRoutes) bindPostForm(c *gin.Context) (*postForm, *int64, string) {
	var form postForm
	if err := c.ShouldBind(&form); err != nil {
		return &form, nil, "invalid form submission"
	}
	form.Text = strings.TrimSpace(form.Text)
	if form.Text == "" {
		return &form, nil, "Text is required"
	}
	if form.Group == "" {
		return &form, nil, ""
	}
	groupId, err := util.ParseId(form.Group)
	if err != nil {
		return &form, nil, "Unknown group"
	}
	return &form, &groupId, ""
}

// saveUploadedImage stores an attached image, if any. A missing file field
// is fine; a bad upload surfaces as a form error.
func (pr *postRoutes) saveUploadedImage(c *gin.Context) (string, string) {
	header, err := c.FormFile("image")
	if err != nil {
		return "", ""
	}
	path, err := pr.media.SavePostImage(header)
	if err != nil {
		return "", "Could not save image: " + err.Error()
	}
	return path, ""
}

func (pr *postRoutes) renderPostForm(c *gin.Context, form *postForm, isEdit bool, formErr string) {
	status := http.StatusOK
	if formErr != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, "post_create.html", baseContext(c, pr.groups, gin.H{
		"form":    form,
		"is_edit": isEdit,
		"error":   formErr,
	}))
}
