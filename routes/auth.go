package routes

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/util"
)

type authRoutes struct {
	db       db.Database
	sessions *auth.Sessions
}

func AddAuthRoutes(group *gin.RouterGroup, database db.Database, sessions *auth.Sessions) {
	routes := authRoutes{db: database, sessions: sessions}
	authGroup := group.Group("/auth")
	authGroup.GET("/signup", util.HandlerWrapper(routes.signup, &util.HandlerOpts{}))
	authGroup.POST("/signup", util.HandlerWrapper(routes.signup, &util.HandlerOpts{}))
	authGroup.GET("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))
	authGroup.POST("/login", util.HandlerWrapper(routes.login, &util.HandlerOpts{}))
	authGroup.GET("/logout", util.HandlerWrapper(routes.logout, &util.HandlerOpts{}))
}

type signupForm struct {
	Username  string `form:"username"`
	Password  string `form:"password"`
	Password2 string `form:"password2"`
}

func (ar *authRoutes) signup(c *gin.Context) *util.HTTPError {
	if c.Request.Method != http.MethodPost {
		ar.renderAuthForm(c, "signup.html", "", "")
		return nil
	}

	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		ar.renderAuthForm(c, "signup.html", "", "invalid form submission")
		return nil
	}
	form.Username = strings.TrimSpace(form.Username)

	formErr := ""
	switch {
	case form.Username == "":
		formErr = "You have to enter a username"
	case form.Password == "":
		formErr = "You have to enter a password"
	case form.Password != form.Password2:
		formErr = "The two passwords do not match"
	}
	if formErr == "" {
		existing, err := ar.db.GetUserByUsername(c, form.Username)
		if err != nil {
			return util.BuildDbHTTPErr(err)
		}
		if existing != nil {
			formErr = "The username is already taken"
		}
	}
	if formErr != "" {
		ar.renderAuthForm(c, "signup.html", form.Username, formErr)
		return nil
	}

	hash, err := auth.HashPassword(form.Password)
	if err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "could not hash password"}
	}
	userId, err := ar.db.CreateUser(c, &db.CreateUser{
		Username:     form.Username,
		PasswordHash: hash,
	})
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}

	if err := ar.sessions.Login(c.Writer, c.Request, userId); err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "could not start session"}
	}
	c.Redirect(http.StatusFound, "/")
	return nil
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (ar *authRoutes) login(c *gin.Context) *util.HTTPError {
	if c.Request.Method != http.MethodPost {
		ar.renderAuthForm(c, "login.html", "", "")
		return nil
	}

	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		ar.renderAuthForm(c, "login.html", "", "invalid form submission")
		return nil
	}

	user, err := ar.db.GetUserByUsername(c, strings.TrimSpace(form.Username))
	if err != nil {
		return util.BuildDbHTTPErr(err)
	}
	if user == nil || !auth.CheckPassword(user.PasswordHash, form.Password) {
		ar.renderAuthForm(c, "login.html", form.Username, "Invalid username or password")
		return nil
	}

	if err := ar.sessions.Login(c.Writer, c.Request, user.Id); err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "could not start session"}
	}
	c.Redirect(http.StatusFound, safeNext(c.Query("next")))
	return nil
}

func (ar *authRoutes) logout(c *gin.Context) *util.HTTPError {
	if err := ar.sessions.Logout(c.Writer, c.Request); err != nil {
		return &util.HTTPError{Status: http.StatusInternalServerError, Message: "could not end session"}
	}
	c.Redirect(http.StatusFound, "/")
	return nil
}

func (ar *authRoutes) renderAuthForm(c *gin.Context, template, username, formErr string) {
	status := http.StatusOK
	if formErr != "" {
		status = http.StatusBadRequest
	}
	c.HTML(status, template, gin.H{
		"username": username,
		"error":    formErr,
	})
}

// safeNext only honors same-site relative targets.
func safeNext(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}
