package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	g "maragu.dev/gomponents"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// HTML renders a gomponents node as the response body.
func HTML(c *gin.Context, code int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := node.Render(c.Writer); err != nil {
		GetLogger().WithError(err).ErrorContext(c.Request.Context(), "Render failed", "path", c.Request.URL.Path)
		_ = c.Error(err)
	}
}

// SeeOther redirects a form post back to a page (post/redirect/get).
func SeeOther(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
