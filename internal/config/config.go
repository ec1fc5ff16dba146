// Package config loads settings from defaults, an optional config.yaml and
// environment variables, in that order of precedence.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port           int      `mapstructure:"port"`
	StorePath      string   `mapstructure:"store_path"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	JWTSecret      string   `mapstructure:"jwt_secret"`

	Razorpay RazorpayConfig `mapstructure:"razorpay"`
	Email    EmailConfig    `mapstructure:"email"`
	Admin    AdminConfig    `mapstructure:"admin"`
}

type RazorpayConfig struct {
	KeyID          string `mapstructure:"key_id"`
	KeySecret      string `mapstructure:"key_secret"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout bounds each gateway call.
func (c RazorpayConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

type EmailConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	User string `mapstructure:"user"`
	Pass string `mapstructure:"pass"`
	From string `mapstructure:"from"`
}

// Enabled reports whether SMTP credentials are configured. Without them the
// server logs outgoing mail instead of sending it.
func (c EmailConfig) Enabled() bool {
	return c.Host != "" && c.User != ""
}

type AdminConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// Load builds the configuration. A config.yaml in the working directory is
// optional; environment variables override everything.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("port", 5000)
	v.SetDefault("store_path", "db.json")
	v.SetDefault("allowed_origins", []string{"http://localhost:3000", "https://www.ajumanholidays.com"})
	v.SetDefault("jwt_secret", "dev_super_secret_change_me")
	v.SetDefault("razorpay.timeout_seconds", 10)
	v.SetDefault("email.port", 587)
	v.SetDefault("email.from", "Ajuman Holidays <ajumanholidays@gmail.com>")
	v.SetDefault("admin.name", "Super Admin")
	v.SetDefault("admin.email", "admin@example.com")
	v.SetDefault("admin.password", "admin123")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read config.yaml: %w", err)
		}
	}

	bindings := map[string]string{
		"port":                "PORT",
		"store_path":          "DB_PATH",
		"jwt_secret":          "JWT_SECRET",
		"razorpay.key_id":     "RAZORPAY_KEY_ID",
		"razorpay.key_secret": "RAZORPAY_KEY_SECRET",
		"email.host":          "EMAIL_HOST",
		"email.port":          "EMAIL_PORT",
		"email.user":          "EMAIL_USER",
		"email.pass":          "EMAIL_PASS",
		"email.from":          "EMAIL_FROM",
		"admin.email":         "ADMIN_EMAIL",
		"admin.password":      "ADMIN_PASSWORD",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
