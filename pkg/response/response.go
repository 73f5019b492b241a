package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform JSON envelope. Errors always carry Message;
// Error optionally holds field-level details.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope to the response and returns it.
func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	}
	ctx.JSON(status, resp)
	return resp
}

// Error writes an error envelope to the response and returns it.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	resp := APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
	ctx.JSON(status, resp)
	return resp
}
