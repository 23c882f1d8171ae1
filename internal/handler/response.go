package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jdramirez/facturas-api/internal/model"
)

// respondWithError sends the standard error body with the given status.
func respondWithError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, model.ErrorResponse{Error: message})
}

// respondBadRequest sends a 400 Bad Request response.
func respondBadRequest(c *gin.Context, message string) {
	respondWithError(c, http.StatusBadRequest, message)
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	respondWithError(c, http.StatusNotFound, message)
}

// respondInternalServerError sends a 500 Internal Server Error response.
func respondInternalServerError(c *gin.Context, message string) {
	respondWithError(c, http.StatusInternalServerError, message)
}

// respondOK sends a 200 OK response with data.
func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
