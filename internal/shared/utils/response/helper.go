package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

// Success writes a success envelope with the given payload.
func Success(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, "success", code, message, data, nil)
}

// Error writes an error envelope. The detail is surfaced under "errors".
func Error(c *gin.Context, code int, message string, detail interface{}) {
	RespondJSON(c, "error", code, message, nil, detail)
}

// BadRequest is a shorthand for validation failures.
func BadRequest(c *gin.Context, message string, detail interface{}) {
	Error(c, http.StatusBadRequest, message, detail)
}
