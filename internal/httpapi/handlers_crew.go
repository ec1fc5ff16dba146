package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// Drivers and supervisors share the same CRUD shape, differing only in the
// collection they live in and the wording of their messages.

func (s *Server) handleCrewList(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		list := []store.Record{}
		s.store.View(func(doc *store.Document) {
			list = store.CloneAll(*doc.Collection(collection))
		})
		c.JSON(http.StatusOK, list)
	}
}

func (s *Server) handleCrewCreate(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body store.Record
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
			return
		}

		var rec store.Record
		err := s.store.Update(func(doc *store.Document) error {
			rec = store.Record{"id": doc.NextID()}
			rec.Merge(body)
			coll := doc.Collection(collection)
			*coll = append(*coll, rec)
			rec = rec.Clone()
			return nil
		})
		if err != nil {
			s.serverError(c, "create "+collection, err)
			return
		}

		c.JSON(http.StatusCreated, rec)
	}
}

func (s *Server) handleCrewUpdate(collection, notFoundMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body store.Record
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
			return
		}

		id := c.Param("id")
		var rec store.Record
		err := s.store.Update(func(doc *store.Document) error {
			coll := doc.Collection(collection)
			for i, existing := range *coll {
				if recordMatches(existing, "id", id) {
					(*coll)[i].Merge(body)
					rec = (*coll)[i].Clone()
					return nil
				}
			}
			return errNotFound
		})
		if err == errNotFound {
			c.JSON(http.StatusNotFound, gin.H{"message": notFoundMsg})
			return
		}
		if err != nil {
			s.serverError(c, "update "+collection, err)
			return
		}

		c.JSON(http.StatusOK, rec)
	}
}

func (s *Server) handleCrewDelete(collection, deletedMsg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		err := s.store.Update(func(doc *store.Document) error {
			coll := doc.Collection(collection)
			kept := (*coll)[:0]
			for _, rec := range *coll {
				if !recordMatches(rec, "id", id) {
					kept = append(kept, rec)
				}
			}
			*coll = kept
			return nil
		})
		if err != nil {
			s.serverError(c, "delete "+collection, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": deletedMsg})
	}
}
