package util

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type HTTPError struct {
	Status  int
	Message string
}

func (he *HTTPError) Error() string {
	return fmt.Sprintf("%v (statusCode=%v)", he.Message, he.Status)
}

var (
	DbHTTPErr = HTTPError{
		Message: "database error",
		Status:  http.StatusInternalServerError,
	}
	MalformedIdHTTPErr = HTTPError{
		Message: "id malformed",
		Status:  http.StatusBadRequest,
	}
	NotFoundHTTPErr = HTTPError{
		Message: "page not found",
		Status:  http.StatusNotFound,
	}
)

func BuildDbHTTPErr(err error) *HTTPError {
	log.WithError(err).Error("database error occurred")
	return &DbHTTPErr
}

// Handler is a route handler that has already written a response unless it
// returns an error.
type Handler func(c *gin.Context) *HTTPError

type HandlerOpts struct {
}

// HandlerWrapper renders the returned HTTPError as an error page.
func HandlerWrapper(handler Handler, opts *HandlerOpts) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := handler(c); err != nil {
			RenderError(c, err)
		}
	}
}

// RenderError writes the error page for err. break the route after calling
// this function
func RenderError(c *gin.Context, err *HTTPError) {
	template := "error.html"
	if err.Status == http.StatusNotFound {
		template = "404.html"
	}
	c.HTML(err.Status, template, gin.H{
		"message": err.Message,
	})
}
