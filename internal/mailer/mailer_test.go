package mailer

import (
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("Ajuman Holidays <no-reply@ajuman.example>", "guest@example.com", "Booking Confirmation", "Dear Guest,\n\nSee you soon.")

	for _, want := range []string{
		"From: Ajuman Holidays <no-reply@ajuman.example>\r\n",
		"To: guest@example.com\r\n",
		"Subject: Booking Confirmation\r\n",
		"Content-Type: text/plain; charset=\"UTF-8\"\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if !strings.HasSuffix(msg, "\r\n\r\nDear Guest,\n\nSee you soon.") {
		t.Errorf("body not separated from headers: %q", msg)
	}
}

func TestEnvelopeFrom(t *testing.T) {
	cases := map[string]string{
		"Ajuman Holidays <a@b.c>": "a@b.c",
		"a@b.c":                   "a@b.c",
	}
	for in, want := range cases {
		if got := envelopeFrom(in); got != want {
			t.Errorf("envelopeFrom(%q) = %q, want %q", in, got, want)
		}
	}
}
