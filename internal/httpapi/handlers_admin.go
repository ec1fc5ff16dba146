package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ajumanholidays/backend/internal/store"
)

// GET /admin/dashboard-overview
func (s *Server) handleDashboard(c *gin.Context) {
	var stats gin.H
	s.store.View(func(doc *store.Document) {
		cancelled := 0
		for _, b := range doc.Bookings {
			if b.String("status") == "cancelled" {
				cancelled++
			}
		}

		earnings := decimal.Zero
		refunds := decimal.Zero
		for _, p := range doc.Payments {
			amount := decimal.NewFromFloat(p.Float("amount"))
			switch p.String("status") {
			case "success":
				earnings = earnings.Add(amount)
			case "refund":
				refunds = refunds.Add(amount)
			}
		}

		ongoing := 0
		for _, b := range doc.Buses {
			if b.String("status") == "ongoing" {
				ongoing++
			}
		}

		stats = gin.H{
			"totalCustomers": len(doc.Customers),
			"totalBookings":  len(doc.Bookings),
			"totalCancelled": cancelled,
			"totalEarnings":  earnings.InexactFloat64(),
			"totalRefunds":   refunds.InexactFloat64(),
			// Placeholder the admin frontend still expects: refunds plus a
			// flat operating figure.
			"totalExpenses":  refunds.Add(decimal.NewFromInt(1000)).InexactFloat64(),
			"totalBuses":     len(doc.Buses),
			"ongoingBuses":   ongoing,
			"totalRoutes":    len(doc.Routes),
			"totalEmployees": len(doc.Employees),
		}
	})

	c.JSON(http.StatusOK, stats)
}
