package myconfig

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Config holds the startup settings. Payment credentials are absent: they are read per call via myvault.
// ShopName and PaymentAPIBaseURL configure the checkout controller in the client.
// GOOGLE_CLOUD_PROJECT is not part of it: each lib package picks its backend from it at init.
type Config struct {
	Port              string
	ShopName          string
	PaymentAPIBaseURL string
	PublicBaseURL     string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil)
	if err != nil {
		return Config{}, fmt.Errorf("error loading environment: %s", err)
	}

	cfg := Config{
		Port:              valueOrDefault(k.String("PORT"), "8080"),
		ShopName:          valueOrDefault(k.String("SHOP_NAME"), "ShopFlow"),
		PaymentAPIBaseURL: strings.TrimRight(valueOrDefault(k.String("PAYMENT_API_BASE_URL"), "http://localhost:8080"), "/"),
		PublicBaseURL:     strings.TrimRight(valueOrDefault(k.String("PUBLIC_BASE_URL"), "http://localhost:8080"), "/"),
	}
	return cfg, nil
}

func (c Config) HTTPAddr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}
