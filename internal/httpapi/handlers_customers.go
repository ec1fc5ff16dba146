package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /customers returns the admin listing.
func (s *Server) handleCustomerList(c *gin.Context) {
	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Customers {
			list = append(list, sanitizeCustomer(rec))
		}
	})
	c.JSON(http.StatusOK, list)
}

// GET /customers/:id
func (s *Server) handleCustomerGet(c *gin.Context) {
	id := c.Param("id")

	var customer store.Record
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Customers {
			if recordMatches(rec, "id", id) {
				customer = sanitizeCustomer(rec)
				return
			}
		}
	})
	if customer == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Customer not found"})
		return
	}
	c.JSON(http.StatusOK, customer)
}

// PUT /customers/:id applies a merge-style profile update.
func (s *Server) handleCustomerUpdate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	id := c.Param("id")
	var customer store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Customers {
			if recordMatches(rec, "id", id) {
				doc.Customers[i].Merge(body)
				customer = sanitizeCustomer(doc.Customers[i])
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}
	if err != nil {
		s.serverError(c, "update customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "customer": customer})
}

// DELETE /customers/:id
func (s *Server) handleCustomerDelete(c *gin.Context) {
	id := c.Param("id")

	err := s.store.Update(func(doc *store.Document) error {
		kept := doc.Customers[:0]
		for _, rec := range doc.Customers {
			if !recordMatches(rec, "id", id) {
				kept = append(kept, rec)
			}
		}
		doc.Customers = kept
		return nil
	})
	if err != nil {
		s.serverError(c, "delete customer", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}
