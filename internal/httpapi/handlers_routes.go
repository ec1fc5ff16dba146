package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /routes
func (s *Server) handleRouteList(c *gin.Context) {
	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		list = store.CloneAll(doc.Routes)
	})
	c.JSON(http.StatusOK, list)
}

// POST /routes
func (s *Server) handleRouteCreate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var route store.Record
	err := s.store.Update(func(doc *store.Document) error {
		route = store.Record{"id": doc.NextID()}
		route.Merge(body)
		doc.Routes = append(doc.Routes, route)
		route = route.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "create route", err)
		return
	}

	c.JSON(http.StatusCreated, route)
}

// PUT /routes/:id
func (s *Server) handleRouteUpdate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	id := c.Param("id")
	var route store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Routes {
			if recordMatches(rec, "id", id) {
				doc.Routes[i].Merge(body)
				route = doc.Routes[i].Clone()
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
		return
	}
	if err != nil {
		s.serverError(c, "update route", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "route": route})
}

// DELETE /routes/:id
func (s *Server) handleRouteDelete(c *gin.Context) {
	id := c.Param("id")

	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Routes {
			if recordMatches(rec, "id", id) {
				doc.Routes = append(doc.Routes[:i], doc.Routes[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
		return
	}
	if err != nil {
		s.serverError(c, "delete route", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Route deleted"})
}
