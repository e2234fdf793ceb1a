package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the wire shape of every error response. Detail is a plain
// string for service errors; the input-schema layer may substitute a
// structured array of field violations.
type ErrorBody struct {
	Detail any `json:"detail"`
}

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func Error(c *gin.Context, statusCode int, detail string) {
	c.JSON(statusCode, ErrorBody{Detail: detail})
}

// ValidationError reports request-body violations collected by the DTO
// validation layer as a structured detail array.
func ValidationError(c *gin.Context, details any) {
	c.JSON(http.StatusUnprocessableEntity, ErrorBody{Detail: details})
}

func NotFound(c *gin.Context, detail string) {
	Error(c, http.StatusNotFound, detail)
}

func Conflict(c *gin.Context, detail string) {
	Error(c, http.StatusConflict, detail)
}

func UnprocessableEntity(c *gin.Context, detail string) {
	Error(c, http.StatusUnprocessableEntity, detail)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Something went wrong")
}
