package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

var now = time.Now

func timestamp() string {
	return now().Format(time.RFC3339)
}

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		Success:   true,
		Message:   MessageSuccess,
		Data:      data,
		Timestamp: timestamp(),
	}
}

// NewErrorResp builds the error body. Empty details are omitted on the wire.
func NewErrorResp(code, message string, details []string) Resp {
	if len(details) == 0 {
		details = nil
	}
	return Resp{
		Success:   false,
		Message:   message,
		ErrorCode: code,
		Details:   details,
		Timestamp: timestamp(),
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error aborts the chain and sends an error body with the given status.
func Error(c *gin.Context, status int, code, message string, details []string) {
	c.AbortWithStatusJSON(status, NewErrorResp(code, message, details))
}
