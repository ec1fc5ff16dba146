package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ajumanholidays/backend/internal/config"
	"github.com/ajumanholidays/backend/internal/payments"
	"github.com/ajumanholidays/backend/internal/store"
)

// stubGateway implements payments.OrderCreator.
type stubGateway struct {
	CreateOrderFunc func(ctx context.Context, req payments.OrderRequest) (*payments.Order, error)
}

func (g *stubGateway) CreateOrder(ctx context.Context, req payments.OrderRequest) (*payments.Order, error) {
	if g.CreateOrderFunc != nil {
		return g.CreateOrderFunc(ctx, req)
	}
	return &payments.Order{
		ID:          "order_stub1",
		AmountPaise: req.AmountPaise,
		Currency:    req.Currency,
		Raw:         map[string]any{"id": "order_stub1", "amount": req.AmountPaise, "currency": req.Currency, "receipt": req.Receipt},
	}, nil
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// captureSender records fire-and-forget mail so tests can wait for it.
type captureSender struct {
	ch chan sentMail
}

func newCaptureSender() *captureSender {
	return &captureSender{ch: make(chan sentMail, 10)}
}

func (s *captureSender) Send(to, subject, body string) error {
	s.ch <- sentMail{To: to, Subject: subject, Body: body}
	return nil
}

func (s *captureSender) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case m := <-s.ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for email")
		return sentMail{}
	}
}

type testEnv struct {
	srv     *Server
	gateway *stubGateway
	mail    *captureSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		StorePath:      filepath.Join(t.TempDir(), "db.json"),
		AllowedOrigins: []string{"http://localhost:3000"},
		JWTSecret:      "test_secret",
		Admin:          config.AdminConfig{Name: "Super Admin", Email: "admin@example.com", Password: "admin123"},
	}

	st, err := store.Open(cfg.StorePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	gateway := &stubGateway{}
	pay := payments.NewService("rzp_test_key", "s3cr3t", gateway, st, logger)
	mail := newCaptureSender()

	return &testEnv{
		srv:     NewServer(cfg, st, pay, mail, logger),
		gateway: gateway,
		mail:    mail,
	}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	e.srv.Handler().ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func TestRootLiveness(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK || w.Body.String() != "Server is ready" {
		t.Errorf("GET / = %d %q", w.Code, w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodOptions, "/routes", nil, "Origin", "http://localhost:3000")
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}

	w = env.do(t, http.MethodOptions, "/routes", nil, "Origin", "http://evil.example")
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("Allow-Origin for unknown origin = %q", got)
	}
}
