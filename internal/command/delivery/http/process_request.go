package http

import (
	"github.com/gin-gonic/gin"
)

// processParseReq binds the parse request body.
func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processAddReq binds and validates the add-to-calendar request body.
func (h *handler) processAddReq(c *gin.Context) (addReq, error) {
	var req addReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
