package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errEmailExists = errors.New("email already exists")
	errNotFound    = errors.New("record not found")
)

// serverError logs the detail and answers with a generic message so internal
// errors never leak to callers.
func (s *Server) serverError(c *gin.Context, op string, err error) {
	s.log.Printf("error in %s: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
}
