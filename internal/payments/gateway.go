package payments

import (
	"context"
	"fmt"
	"math"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
)

// OrderRequest is what we ask the gateway for: an order in minor currency
// units with immediate capture.
type OrderRequest struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Capture     bool
}

// Order is the gateway's answer. Raw keeps the full gateway payload so the
// API can echo it to the frontend checkout script unchanged.
type Order struct {
	ID          string
	AmountPaise int64
	Currency    string
	Raw         map[string]any
}

// OrderCreator is the slice of the gateway client the payment service needs.
type OrderCreator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
}

type razorpayGateway struct {
	client *razorpay.Client
}

// NewRazorpayGateway wraps the official Razorpay client. The timeout bounds
// each order-creation call so a hung gateway cannot stall the write path.
func NewRazorpayGateway(keyID, keySecret string, timeout time.Duration) OrderCreator {
	client := razorpay.NewClient(keyID, keySecret)
	if timeout > 0 {
		client.SetTimeout(timeoutSeconds(timeout))
	}
	return &razorpayGateway{client: client}
}

// timeoutSeconds converts a duration to the whole seconds the gateway client
// accepts, clamped to its int16 parameter range.
func timeoutSeconds(d time.Duration) int16 {
	secs := int64(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	if secs > math.MaxInt16 {
		secs = math.MaxInt16
	}
	return int16(secs)
}

func (g *razorpayGateway) CreateOrder(ctx context.Context, req OrderRequest) (*Order, error) {
	capture := 0
	if req.Capture {
		capture = 1
	}
	data := map[string]interface{}{
		"amount":          req.AmountPaise,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": capture,
	}

	raw, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	id, _ := raw["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("gateway returned order without id")
	}
	currency, _ := raw["currency"].(string)
	return &Order{
		ID:          id,
		AmountPaise: int64(asFloat(raw["amount"])),
		Currency:    currency,
		Raw:         raw,
	}, nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	}
	return 0
}
