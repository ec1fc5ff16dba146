// Package payments holds the two pieces of the payment flow with real
// invariants: creating a gateway order in minor currency units, and verifying
// the signed completion callback before anything is recorded.
package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ajumanholidays/backend/internal/store"
)

var hundred = decimal.NewFromInt(100)

// Service creates gateway orders and verifies payment callbacks.
type Service struct {
	keyID     string
	keySecret string
	gateway   OrderCreator
	store     *store.Store
	log       *log.Logger
}

func NewService(keyID, keySecret string, gateway OrderCreator, st *store.Store, logger *log.Logger) *Service {
	return &Service{keyID: keyID, keySecret: keySecret, gateway: gateway, store: st, log: logger}
}

// OrderResult is everything the checkout frontend needs in one round trip,
// including the public key id.
type OrderResult struct {
	OrderID     string
	AmountPaise int64
	Currency    string
	KeyID       string
	Order       map[string]any
}

// CreateOrder asks the gateway for an INR order with immediate capture.
// amount is in major units (rupees); the gateway wants paise, rounded to the
// nearest integer so fractional paise never drift through float math.
func (s *Service) CreateOrder(ctx context.Context, amount decimal.Decimal) (*OrderResult, error) {
	if amount.Sign() <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	paise := amount.Mul(hundred).Round(0).IntPart()
	req := OrderRequest{
		AmountPaise: paise,
		Currency:    "INR",
		Receipt:     fmt.Sprintf("rcpt_%d", time.Now().UnixMilli()),
		Capture:     true,
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.log.Printf("error creating gateway order: %v", err)
		return nil, fmt.Errorf("%w: create order: %v", ErrGateway, err)
	}

	return &OrderResult{
		OrderID:     order.ID,
		AmountPaise: order.AmountPaise,
		Currency:    order.Currency,
		KeyID:       s.keyID,
		Order:       order.Raw,
	}, nil
}

// Signature returns the expected callback digest: lowercase hex of
// HMAC-SHA256 over "<orderID>|<paymentID>" keyed with the shared secret.
func (s *Service) Signature(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(s.keySecret))
	fmt.Fprintf(mac, "%s|%s", orderID, paymentID)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks that a completion callback was signed with the
// shared secret. The comparison is constant time. Pure: no side effects.
func (s *Service) VerifySignature(orderID, paymentID, signature string) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return fmt.Errorf("%w: order id, payment id and signature are required", ErrValidation)
	}
	expected := s.Signature(orderID, paymentID)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// PaymentDetails identifies the booking a verified payment belongs to.
type PaymentDetails struct {
	CustomerID int64
	BookingID  int64
	Amount     decimal.Decimal
}

// VerifyAndRecord verifies the callback and, when booking details are given,
// appends the payment record in the same store update. A verified payment is
// either fully recorded or, on a bad signature, not touched at all.
func (s *Service) VerifyAndRecord(orderID, paymentID, signature string, details *PaymentDetails) (store.Record, error) {
	if err := s.VerifySignature(orderID, paymentID, signature); err != nil {
		return nil, err
	}
	if details == nil {
		return nil, nil
	}

	var rec store.Record
	err := s.store.Update(func(doc *store.Document) error {
		amount, _ := details.Amount.Float64()
		rec = store.Record{
			"id":         doc.NextID(),
			"customerId": details.CustomerID,
			"bookingId":  details.BookingID,
			"amount":     amount,
			"orderId":    orderID,
			"paymentId":  paymentID,
			"date":       time.Now().UTC().Format(time.RFC3339),
			"status":     "success",
		}
		doc.Payments = append(doc.Payments, rec)
		rec = rec.Clone()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}
