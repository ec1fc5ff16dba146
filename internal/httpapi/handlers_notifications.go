package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /notifications/:customerId
func (s *Server) handleNotificationList(c *gin.Context) {
	customerID := c.Param("customerId")

	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Notifications {
			if recordMatches(rec, "customerId", customerID) {
				list = append(list, rec.Clone())
			}
		}
	})
	c.JSON(http.StatusOK, list)
}

// POST /notifications lets the admin send a custom notification.
func (s *Server) handleNotificationCreate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var notification store.Record
	err := s.store.Update(func(doc *store.Document) error {
		notification = store.Record{
			"id":         doc.NextID(),
			"customerId": body["customerId"],
			"message":    body["message"],
			"type":       body["type"], // booking | cancellation | payment | delay | info
			"isRead":     false,
			"date":       dateToday(),
		}
		doc.Notifications = append(doc.Notifications, notification)
		notification = notification.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "create notification", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "notification": notification})
}

// POST /notifications/delay pushes a bus delay notice from the admin panel.
func (s *Server) handleDelayNotification(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var notification store.Record
	err := s.store.Update(func(doc *store.Document) error {
		notification = store.Record{
			"id":         doc.NextID(),
			"customerId": body["customerId"],
			"message":    fmt.Sprintf("🚌 Your bus from %s → %s is delayed by %v mins.", body.String("origin"), body.String("destination"), body["delayMins"]),
			"type":       "delay",
			"isRead":     false,
			"date":       dateToday(),
		}
		doc.Notifications = append(doc.Notifications, notification)
		notification = notification.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "delay notification", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "notification": notification})
}

// PUT /notifications/:id/read
func (s *Server) handleNotificationRead(c *gin.Context) {
	id := c.Param("id")

	var notification store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for _, rec := range doc.Notifications {
			if recordMatches(rec, "id", id) {
				rec["isRead"] = true
				notification = rec.Clone()
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	if err != nil {
		s.serverError(c, "mark notification read", err)
		return
	}

	c.JSON(http.StatusOK, notification)
}
