// Package respond is the single place the analysis API shapes its JSON:
// successful payloads pass through unchanged, errors always arrive as the
// {"error": {...}} envelope the clients parse.
package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON writes payload as the response body with the given status.
func JSON(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// OK writes payload with a 200 status. Reads of stored analyses and the
// meta listings go through here.
func OK(c *gin.Context, payload any) {
	JSON(c, http.StatusOK, payload)
}

// Created writes payload with a 201 status, used when a new analysis has
// been scored and persisted.
func Created(c *gin.Context, payload any) {
	JSON(c, http.StatusCreated, payload)
}
