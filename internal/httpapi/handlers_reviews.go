package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /reviews
func (s *Server) handleReviewList(c *gin.Context) {
	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		list = store.CloneAll(doc.Reviews)
	})
	c.JSON(http.StatusOK, list)
}

// POST /reviews
func (s *Server) handleReviewCreate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var review store.Record
	err := s.store.Update(func(doc *store.Document) error {
		review = store.Record{
			"id":      doc.NextID(),
			"name":    body["name"],
			"rating":  body["rating"],
			"comment": body["comment"],
			"date":    isoNow(),
		}
		doc.Reviews = append(doc.Reviews, review)
		review = review.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "create review", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "review": review})
}
