package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Not Found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusMethodNotAllowed:    "Method Not Allowed",
	http.StatusUnprocessableEntity: "Unprocessable",
	http.StatusInternalServerError: "Internal Server Error",
}

// AbortWithError writes the JSON error body for status and stops the chain.
func AbortWithError(c *gin.Context, status int) {
	message, ok := errorMessages[status]
	if !ok {
		message = http.StatusText(status)
	}
	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

func badRequest(c *gin.Context) {
	AbortWithError(c, http.StatusBadRequest)
}

func notFound(c *gin.Context) {
	AbortWithError(c, http.StatusNotFound)
}

// unprocessable attaches err, if any, so the access log records the cause.
func unprocessable(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	AbortWithError(c, http.StatusUnprocessableEntity)
}

func internalError(c *gin.Context, err error) {
	_ = c.Error(err)
	AbortWithError(c, http.StatusInternalServerError)
}
