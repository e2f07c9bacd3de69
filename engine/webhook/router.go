package webhook

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Parthiban024/jira-automation/engine/asana"
)

// Processor defines the minimal interface required by the HTTP router.
// It is implemented by Service.
type Processor interface {
	Process(ctx context.Context, body io.Reader) (asana.Result, error)
}

// Register binds the inbound webhook endpoint.
// Path: POST /jira-webhook
//
// The response is always HTTP 200 carrying the serialized Result, even
// when forwarding failed: the sender must not retry on downstream
// failures. 400 is reserved for bodies that are not JSON at all.
func Register(r gin.IRouter, p Processor) {
	r.POST("/jira-webhook", func(c *gin.Context) {
		res, err := p.Process(c.Request.Context(), c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Expected JSON data"})
			return
		}
		c.JSON(http.StatusOK, res)
	})
}
