package payments

import "errors"

var (
	// ErrValidation marks a request missing a required field or carrying a
	// non-positive amount. Maps to HTTP 400.
	ErrValidation = errors.New("invalid payment request")

	// ErrInvalidSignature means the callback signature did not match the
	// digest computed with the shared secret. Maps to HTTP 400.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrGateway wraps any failure talking to the payment gateway. Maps to
	// HTTP 500 with a generic message; the detail stays in the server log.
	ErrGateway = errors.New("payment gateway error")
)
