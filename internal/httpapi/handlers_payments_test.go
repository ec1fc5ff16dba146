package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/ajumanholidays/backend/internal/payments"
	"github.com/ajumanholidays/backend/internal/store"
)

func TestCreateOrderEndpoint(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/payments/create", map[string]any{
		"booking": map[string]any{"amount": 499.5},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	res := decodeJSON(t, w)
	if res["success"] != true || res["orderId"] != "order_stub1" {
		t.Errorf("response = %v", res)
	}
	if res["amount"].(float64) != 49950 {
		t.Errorf("amount = %v, want 49950 paise", res["amount"])
	}
	if res["currency"] != "INR" || res["key"] != "rzp_test_key" {
		t.Errorf("currency/key = %v/%v", res["currency"], res["key"])
	}
	if _, ok := res["order"].(map[string]any); !ok {
		t.Error("full order payload missing")
	}
}

func TestCreateOrderEndpointMissingAmount(t *testing.T) {
	env := newTestEnv(t)

	for _, body := range []map[string]any{
		{},
		{"booking": map[string]any{}},
		{"booking": map[string]any{"amount": 0}},
	} {
		w := env.do(t, http.MethodPost, "/api/payments/create", body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("body %v: status = %d", body, w.Code)
			continue
		}
		if res := decodeJSON(t, w); res["message"] != "Missing booking/amount" {
			t.Errorf("body %v: message = %v", body, res["message"])
		}
	}
}

func TestCreateOrderEndpointGatewayFailure(t *testing.T) {
	env := newTestEnv(t)
	env.gateway.CreateOrderFunc = func(ctx context.Context, req payments.OrderRequest) (*payments.Order, error) {
		return nil, errors.New("gateway unreachable")
	}

	w := env.do(t, http.MethodPost, "/api/payments/create", map[string]any{
		"booking": map[string]any{"amount": 100},
	})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	res := decodeJSON(t, w)
	if res["message"] != "Server error creating order" {
		t.Errorf("message = %v", res["message"])
	}
	if strings.Contains(w.Body.String(), "unreachable") {
		t.Error("gateway detail leaked to caller")
	}
}

func TestVerifyEndpoint(t *testing.T) {
	env := newTestEnv(t)
	sig := env.srv.pay.Signature("order_abc", "pay_xyz")

	w := env.do(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  sig,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	res := decodeJSON(t, w)
	if res["message"] != "Payment verified" || res["razorpay_order_id"] != "order_abc" {
		t.Errorf("response = %v", res)
	}
}

func TestVerifyEndpointBadSignature(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  "deadbeef",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if res := decodeJSON(t, w); res["message"] != "Invalid signature" {
		t.Errorf("message = %v", res["message"])
	}
}

func TestVerifyEndpointMissingFields(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id": "order_abc",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
	if res := decodeJSON(t, w); res["message"] != "Missing Razorpay payment fields" {
		t.Errorf("message = %v", res["message"])
	}
}

func TestVerifyEndpointRecordsPaymentWithBookingContext(t *testing.T) {
	env := newTestEnv(t)
	sig := env.srv.pay.Signature("order_abc", "pay_xyz")

	w := env.do(t, http.MethodPost, "/api/payments/verify", map[string]any{
		"razorpay_order_id":   "order_abc",
		"razorpay_payment_id": "pay_xyz",
		"razorpay_signature":  sig,
		"customerId":          7,
		"bookingId":           42,
		"amount":              499.5,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}

	env.srv.store.View(func(doc *store.Document) {
		if len(doc.Payments) != 1 {
			t.Fatalf("payments = %d, want 1", len(doc.Payments))
		}
		p := doc.Payments[0]
		if p.Int64("bookingId") != 42 || p.String("status") != "success" || p.String("paymentId") != "pay_xyz" {
			t.Errorf("recorded payment = %#v", p)
		}
	})
}

func TestPaymentRecordDefaultsStatusAndSendsMail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/payments", map[string]any{
		"customerId":   7,
		"bookingId":    42,
		"amount":       499.5,
		"email":        "aisha@example.com",
		"customerName": "Aisha",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", w.Code, w.Body.String())
	}
	res := decodeJSON(t, w)
	payment := res["payment"].(map[string]any)
	if payment["status"] != "success" {
		t.Errorf("status defaulted to %v", payment["status"])
	}

	mail := env.mail.wait(t)
	if mail.To != "aisha@example.com" || mail.Subject != "Payment Successful - Ajuman Holidays" {
		t.Errorf("mail = %+v", mail)
	}
	if !strings.Contains(mail.Body, "Dear Aisha") {
		t.Errorf("mail body = %q", mail.Body)
	}
}

func TestPaymentRecordFailedStatusMail(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/payments", map[string]any{
		"customerId": 7, "bookingId": 42, "amount": 100,
		"email": "aisha@example.com", "customerName": "Aisha", "status": "failed",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d", w.Code)
	}

	mail := env.mail.wait(t)
	if mail.Subject != "Payment Failed - Ajuman Holidays" {
		t.Errorf("subject = %q", mail.Subject)
	}
}

func TestPaymentRefund(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/payments", map[string]any{
		"customerId": 7, "bookingId": 42, "amount": 100, "email": "a@b.c", "customerName": "A",
	})
	payment := decodeJSON(t, w)["payment"].(map[string]any)
	id := int64(payment["id"].(float64))
	env.mail.wait(t)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/payments/%d/refund", id), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("refund status = %d body = %s", w.Code, w.Body.String())
	}
	res := decodeJSON(t, w)
	refunded := res["payment"].(map[string]any)
	if refunded["status"] != "refund" {
		t.Errorf("status = %v", refunded["status"])
	}

	w = env.do(t, http.MethodPut, "/payments/999999/refund", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown refund status = %d", w.Code)
	}
}
