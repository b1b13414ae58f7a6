// Package handler contains the gin request handlers for the REST surface.
package handler

import "github.com/gin-gonic/gin"

// errorBody builds the uniform error envelope. Every rejection carries a
// stable machine-readable code next to the human-readable message.
func errorBody(code, message string, extra gin.H) gin.H {
	body := gin.H{"code": code, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	return gin.H{"error": body}
}
