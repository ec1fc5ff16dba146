package httpapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/ajumanholidays/backend/internal/payments"
	"github.com/ajumanholidays/backend/internal/store"
)

type createOrderReq struct {
	Booking struct {
		Amount decimal.Decimal `json:"amount"`
	} `json:"booking"`
}

// POST /api/payments/create
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil || req.Booking.Amount.Sign() <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing booking/amount"})
		return
	}

	res, err := s.pay.CreateOrder(c.Request.Context(), req.Booking.Amount)
	if err != nil {
		if errors.Is(err, payments.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing booking/amount"})
			return
		}
		s.log.Printf("error creating order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error creating order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"orderId":  res.OrderID,
		"amount":   res.AmountPaise,
		"currency": res.Currency,
		"key":      res.KeyID,
		"order":    res.Order,
	})
}

type verifyReq struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`

	// Optional booking context: when present the verified payment is
	// recorded in the same operation, so it cannot be lost between the
	// verify call and a separate record call.
	CustomerID int64           `json:"customerId"`
	BookingID  int64           `json:"bookingId"`
	Amount     decimal.Decimal `json:"amount"`
}

// POST /api/payments/verify
func (s *Server) handleVerifyPayment(c *gin.Context) {
	var req verifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing Razorpay payment fields"})
		return
	}

	var details *payments.PaymentDetails
	if req.BookingID != 0 {
		details = &payments.PaymentDetails{
			CustomerID: req.CustomerID,
			BookingID:  req.BookingID,
			Amount:     req.Amount,
		}
	}

	_, err := s.pay.VerifyAndRecord(req.OrderID, req.PaymentID, req.Signature, details)
	switch {
	case errors.Is(err, payments.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Missing Razorpay payment fields"})
		return
	case errors.Is(err, payments.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid signature"})
		return
	case err != nil:
		s.log.Printf("verification error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error verifying payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":             true,
		"message":             "Payment verified",
		"razorpay_order_id":   req.OrderID,
		"razorpay_payment_id": req.PaymentID,
	})
}

type paymentEmailReq struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// POST /api/payments/send-email
func (s *Server) handlePaymentEmail(c *gin.Context) {
	var req paymentEmailReq
	if err := c.ShouldBindJSON(&req); err != nil || req.To == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "to/subject/body required"})
		return
	}
	s.sendMail(req.To, req.Subject, req.Body)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /payments
func (s *Server) handlePaymentRecord(c *gin.Context) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid body"})
		return
	}

	status := body.String("status")
	if status == "" {
		status = "success"
	}

	var payment store.Record
	err := s.store.Update(func(doc *store.Document) error {
		payment = store.Record{
			"id":         doc.NextID(),
			"customerId": body["customerId"],
			"bookingId":  body["bookingId"],
			"amount":     body["amount"],
			"date":       isoNow(),
			"status":     status,
		}
		doc.Payments = append(doc.Payments, payment)
		payment = payment.Clone()
		return nil
	})
	if err != nil {
		s.serverError(c, "record payment", err)
		return
	}

	email := body.String("email")
	name := body.String("customerName")
	switch status {
	case "success":
		s.sendMail(email, "Payment Successful - Ajuman Holidays",
			fmt.Sprintf("Dear %s,\n\nWe have successfully received your payment of ₹%v for your booking (ID: %v).\n\nThank you for trusting Ajuman Holidays.\nSafe Travels!\n\n- Ajuman Holidays", name, body["amount"], body["bookingId"]))
	case "failed":
		s.sendMail(email, "Payment Failed - Ajuman Holidays",
			fmt.Sprintf("Dear %s,\n\nUnfortunately, your payment of ₹%v for booking (ID: %v) has failed.\nPlease try again or contact support for assistance.\n\n- Ajuman Holidays", name, body["amount"], body["bookingId"]))
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "payment": payment})
}

// PUT /payments/:id/refund
func (s *Server) handlePaymentRefund(c *gin.Context) {
	id := c.Param("id")

	var payment store.Record
	err := s.store.Update(func(doc *store.Document) error {
		for _, rec := range doc.Payments {
			if recordMatches(rec, "id", id) {
				rec["status"] = "refund"
				payment = rec.Clone()
				return nil
			}
		}
		return errNotFound
	})
	if err == errNotFound {
		c.JSON(http.StatusNotFound, gin.H{"message": "Payment not found"})
		return
	}
	if err != nil {
		s.serverError(c, "refund payment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "payment": payment})
}
