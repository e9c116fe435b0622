package middleware

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/velichko-dev/inkline/auth"
	"github.com/velichko-dev/inkline/db"
	"github.com/velichko-dev/inkline/model"
)

const (
	USER_KEY  = "user"
	LoginPath = "/auth/login"
)

type AuthConfig struct {
	// LoginNotRequired lets anonymous requests through with no user in
	// the context; pages use it to render login-aware chrome.
	LoginNotRequired bool
}

// Auth resolves the session user into the gin context. When login is
// required and there is none, the request is redirected to the login page
// with a next parameter pointing back at the original target.
func Auth(userDB db.UserDatabase, sessions *auth.Sessions, config *AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userId, ok := sessions.CurrentUserId(c.Request); ok {
			user, err := userDB.GetUserById(c, userId)
			if err == nil && user != nil {
				c.Set(USER_KEY, user)
				return
			}
		}
		if config.LoginNotRequired {
			return
		}
		next := url.QueryEscape(c.Request.URL.RequestURI())
		c.Redirect(http.StatusFound, LoginPath+"?next="+next)
		c.Abort()
	}
}

// GetUser returns the context user, nil for anonymous requests.
func GetUser(c *gin.Context) *model.User {
	user, ok := c.Get(USER_KEY)
	if !ok {
		return nil
	}
	return user.(*model.User)
}

// MustGetUser is for handlers behind a required-auth config.
func MustGetUser(c *gin.Context) *model.User {
	user, _ := c.Get(USER_KEY)
	return user.(*model.User)
}
