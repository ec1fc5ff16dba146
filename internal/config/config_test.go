package config

import (
	"os"
	"testing"
)

// chdir changes to dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir()) // no config.yaml present

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 5000 {
		t.Errorf("Port = %d, want 5000", cfg.Port)
	}
	if cfg.StorePath != "db.json" {
		t.Errorf("StorePath = %q", cfg.StorePath)
	}
	if cfg.Razorpay.TimeoutSeconds != 10 {
		t.Errorf("Razorpay.TimeoutSeconds = %d", cfg.Razorpay.TimeoutSeconds)
	}
	if cfg.Email.Enabled() {
		t.Error("email enabled without credentials")
	}
	if cfg.Admin.Email != "admin@example.com" {
		t.Errorf("Admin.Email = %q", cfg.Admin.Email)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "8123")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_live_abc")
	t.Setenv("RAZORPAY_KEY_SECRET", "topsecret")
	t.Setenv("EMAIL_HOST", "smtp.example.com")
	t.Setenv("EMAIL_USER", "mailer@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8123 {
		t.Errorf("Port = %d, want 8123", cfg.Port)
	}
	if cfg.Razorpay.KeyID != "rzp_live_abc" || cfg.Razorpay.KeySecret != "topsecret" {
		t.Errorf("Razorpay = %+v", cfg.Razorpay)
	}
	if !cfg.Email.Enabled() {
		t.Error("email should be enabled with host and user set")
	}
}

func TestLoadConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	yaml := "port: 6001\nstore_path: data/db.json\nadmin:\n  email: ops@ajuman.example\n"
	if err := os.WriteFile("config.yaml", []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 6001 || cfg.StorePath != "data/db.json" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.Admin.Email != "ops@ajuman.example" {
		t.Errorf("Admin.Email = %q", cfg.Admin.Email)
	}
}
