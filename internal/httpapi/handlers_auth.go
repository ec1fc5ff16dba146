package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sanitizeCustomer returns a password-free deep copy, safe to serialize after
// the store lock is released.
func sanitizeCustomer(rec store.Record) store.Record {
	out := rec.Clone()
	delete(out, "password")
	return out
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "name, email and password are required"})
		return
	}

	var customer store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for _, existing := range doc.Customers {
			if strings.EqualFold(existing.String("email"), req.Email) {
				return errEmailExists
			}
		}
		customer = store.Record{
			"id":       doc.NextID(),
			"name":     req.Name,
			"email":    req.Email,
			"password": HashPassword(req.Password),
		}
		doc.Customers = append(doc.Customers, customer)
		customer = sanitizeCustomer(customer)
		return nil
	})
	if err == errEmailExists {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already exists"})
		return
	}
	if err != nil {
		s.serverError(c, "register", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Registration successful",
		"customer": customer,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var customer store.Record
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Customers {
			if strings.EqualFold(rec.String("email"), req.Email) && checkPassword(rec.String("password"), req.Password) {
				customer = sanitizeCustomer(rec)
				return
			}
		}
	})
	if customer == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := s.issueToken(customer.ID(), roleCustomer)
	if err != nil {
		s.serverError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"token":    token,
		"customer": customer,
	})
}

func (s *Server) handleAdminLogin(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}
	if req.Email != s.cfg.Admin.Email || req.Password != s.cfg.Admin.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	token, err := s.issueToken(0, roleAdmin)
	if err != nil {
		s.serverError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
		"admin":   gin.H{"name": s.cfg.Admin.Name, "email": req.Email},
	})
}
