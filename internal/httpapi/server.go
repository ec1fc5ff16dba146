// Package httpapi exposes the booking backend over HTTP. Response envelopes
// match what the existing frontends already consume.
package httpapi

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/config"
	"github.com/ajumanholidays/backend/internal/mailer"
	"github.com/ajumanholidays/backend/internal/payments"
	"github.com/ajumanholidays/backend/internal/store"
)

type Server struct {
	cfg    *config.Config
	store  *store.Store
	pay    *payments.Service
	mail   mailer.Sender
	log    *log.Logger
	router *gin.Engine
}

func NewServer(cfg *config.Config, st *store.Store, pay *payments.Service, mail mailer.Sender, logger *log.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		store:  st,
		pay:    pay,
		mail:   mail,
		log:    logger,
		router: router,
	}

	router.Use(s.cors())

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is ready")
	})

	auth := router.Group("/api/auth")
	{
		auth.POST("/customers", s.handleRegister)
		auth.POST("/login", s.handleLogin)
		auth.POST("/admin-login", s.handleAdminLogin)
	}

	payGroup := router.Group("/api/payments")
	{
		payGroup.POST("/create", s.handleCreateOrder)
		payGroup.POST("/verify", s.handleVerifyPayment)
		payGroup.POST("/send-email", s.handlePaymentEmail)
	}

	router.GET("/customers", s.handleCustomerList)
	router.GET("/customers/:id", s.handleCustomerGet)
	router.PUT("/customers/:id", s.handleCustomerUpdate)
	router.DELETE("/customers/:id", s.handleCustomerDelete)

	router.GET("/routes", s.handleRouteList)
	router.POST("/routes", s.handleRouteCreate)
	router.PUT("/routes/:id", s.handleRouteUpdate)
	router.DELETE("/routes/:id", s.handleRouteDelete)

	router.GET("/bookings/:customerId", s.handleBookingList)
	router.POST("/bookings", s.handleBookingCreate)
	router.PUT("/bookings/:id", s.handleBookingUpdate)
	router.DELETE("/bookings/:id", s.handleBookingDelete)

	router.GET("/notifications/:customerId", s.handleNotificationList)
	router.POST("/notifications", s.handleNotificationCreate)
	router.POST("/notifications/delay", s.handleDelayNotification)
	router.PUT("/notifications/:id/read", s.handleNotificationRead)

	router.GET("/reviews", s.handleReviewList)
	router.POST("/reviews", s.handleReviewCreate)

	router.POST("/payments", s.handlePaymentRecord)
	router.PUT("/payments/:id/refund", s.handlePaymentRefund)

	router.GET("/buses", s.handleBusList)
	router.GET("/buses/:id", s.handleBusGet)
	router.POST("/buses", s.handleBusCreate)
	router.PUT("/buses/:id", s.handleBusUpdate)
	router.DELETE("/buses/:id", s.handleBusDelete)

	router.GET("/drivers", s.handleCrewList("drivers"))
	router.POST("/drivers", s.handleCrewCreate("drivers"))
	router.PUT("/drivers/:id", s.handleCrewUpdate("drivers", "Driver not found"))
	router.DELETE("/drivers/:id", s.handleCrewDelete("drivers", "Driver deleted"))

	router.GET("/supervisors", s.handleCrewList("supervisors"))
	router.POST("/supervisors", s.handleCrewCreate("supervisors"))
	router.PUT("/supervisors/:id", s.handleCrewUpdate("supervisors", "Supervisor not found"))
	router.DELETE("/supervisors/:id", s.handleCrewDelete("supervisors", "Supervisor deleted"))

	admin := router.Group("/admin", s.requireAdmin())
	{
		admin.GET("/dashboard-overview", s.handleDashboard)
	}

	return s
}

// Handler returns the router for use by an http.Server or a test.
func (s *Server) Handler() http.Handler { return s.router }

// sendMail delivers in the background; failures are logged, never returned to
// the HTTP caller.
func (s *Server) sendMail(to, subject, body string) {
	if to == "" {
		return
	}
	go func() {
		if err := s.mail.Send(to, subject, body); err != nil {
			s.log.Printf("error sending email to %s: %v", to, err)
		}
	}()
}
