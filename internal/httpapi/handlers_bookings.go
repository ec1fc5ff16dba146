package httpapi

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /bookings/:customerId
func (s *Server) handleBookingList(c *gin.Context) {
	customerID := c.Param("customerId")

	list := []store.Record{}
	s.store.View(func(doc *store.Document) {
		for _, rec := range doc.Bookings {
			if recordMatches(rec, "customerId", customerID) {
				list = append(list, rec.Clone())
			}
		}
	})
	c.JSON(http.StatusOK, list)
}

// POST /bookings
func (s *Server) handleBookingCreate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	var booking store.Record
	err := s.store.Update(func(doc *store.Document) error {
		booking = store.Record{"id": doc.NextID()}
		booking.Merge(body)
		doc.Bookings = append(doc.Bookings, booking)
		booking = booking.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "create booking", err)
		return
	}

	s.sendMail(booking.String("email"), "Booking Confirmation - Ajuman Holidays",
		fmt.Sprintf("Dear %s,\n\nYour booking from %s → %s on %s has been confirmed.\n\nThank you for choosing Ajuman Holidays!",
			booking.String("name"), booking.String("origin"), booking.String("destination"), booking.String("date")))

	c.JSON(http.StatusCreated, gin.H{"success": true, "booking": booking})
}

// PUT /bookings/:id
func (s *Server) handleBookingUpdate(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	id := c.Param("id")
	var booking store.Record
	err := s.store.Update(func(doc *store.Document) error {
		i := -1
		for j, rec := range doc.Bookings {
			if recordMatches(rec, "id", id) {
				i = j
				break
			}
		}
		if i < 0 {
			return errNotFound
		}

		doc.Bookings[i].Merge(body)
		booking = doc.Bookings[i].Clone()

		// Let the customer know their booking changed.
		doc.Notifications = append(doc.Notifications, store.Record{
			"id":         doc.NextID(),
			"message":    fmt.Sprintf("Your booking from %s → %s has been updated.", booking.String("origin"), booking.String("destination")),
			"isRead":     false,
			"date":       dateToday(),
			"customerId": booking["customerId"],
		})
		return nil
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if err != nil {
		s.serverError(c, "update booking", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": booking})
}

// DELETE /bookings/:id
func (s *Server) handleBookingDelete(c *gin.Context) {
	id := c.Param("id")

	var booking store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for i, rec := range doc.Bookings {
			if recordMatches(rec, "id", id) {
				booking = rec.Clone()
				doc.Bookings = append(doc.Bookings[:i], doc.Bookings[i+1:]...)
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		return
	}
	if err != nil {
		s.serverError(c, "delete booking", err)
		return
	}

	s.sendMail(booking.String("email"), "Booking Cancelled - Ajuman Holidays",
		fmt.Sprintf("Dear %s,\n\nYour booking from %s → %s on %s has been cancelled.\n\nIf this wasn't you, please contact support.",
			booking.String("name"), booking.String("origin"), booking.String("destination"), booking.String("date")))

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
}
