package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	ProviderAirtable = "airtable"
	ProviderMews     = "mews"
)

type AirtableTables struct {
	Rooms       string
	Bookings    string
	Menu        string
	RoomService string
}

type Airtable struct {
	APIKey string
	BaseID string
	Tables AirtableTables
}

type Mews struct {
	APIURL      string
	AccessToken string
	ClientToken string
	ServiceID   string
}

type Telemetry struct {
	PublicKey string
	SecretKey string
	Host      string
}

// Enabled reports whether the analytics key pair is configured. Without it
// tool invocations are not recorded.
func (t Telemetry) Enabled() bool {
	return t.PublicKey != "" && t.SecretKey != ""
}

type Config struct {
	Env      string
	HTTPAddr string
	Provider string

	// Optional bearer token guard for the tool endpoints. Empty disables it.
	AuthSecret string

	Airtable  Airtable
	Mews      Mews
	Telemetry Telemetry
}

// Load reads the configuration from the environment and validates the
// credentials of the selected PMS provider.
func Load() (*Config, error) {
	cfg := &Config{
		Env:        getEnv("APP_ENV", "development"),
		HTTPAddr:   ":" + getEnv("PORT", "8080"),
		Provider:   strings.ToLower(getEnv("PMS_PROVIDER", ProviderAirtable)),
		AuthSecret: strings.TrimSpace(os.Getenv("TOOLS_JWT_SECRET")),
		Airtable: Airtable{
			APIKey: strings.TrimSpace(os.Getenv("AIRTABLE_API_KEY")),
			BaseID: strings.TrimSpace(os.Getenv("AIRTABLE_BASE_ID")),
			Tables: AirtableTables{
				Rooms:       getEnv("AIRTABLE_ROOMS_TABLE", "Rooms"),
				Bookings:    getEnv("AIRTABLE_BOOKINGS_TABLE", "Bookings"),
				Menu:        getEnv("AIRTABLE_MENU_TABLE", "Menu"),
				RoomService: getEnv("AIRTABLE_ROOM_SERVICE_TABLE", "RoomService"),
			},
		},
		Mews: Mews{
			APIURL:      getEnv("MEWS_API_URL", "https://api.mews.com"),
			AccessToken: strings.TrimSpace(os.Getenv("MEWS_ACCESS_TOKEN")),
			ClientToken: strings.TrimSpace(os.Getenv("MEWS_CLIENT_TOKEN")),
			ServiceID:   strings.TrimSpace(os.Getenv("MEWS_SERVICE_ID")),
		},
		Telemetry: Telemetry{
			PublicKey: strings.TrimSpace(os.Getenv("LANGFUSE_PUBLIC_KEY")),
			SecretKey: strings.TrimSpace(os.Getenv("LANGFUSE_SECRET_KEY")),
			Host:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Provider {
	case ProviderAirtable:
		if c.Airtable.APIKey == "" {
			return fmt.Errorf("AIRTABLE_API_KEY is required when using the airtable provider")
		}
		if c.Airtable.BaseID == "" {
			return fmt.Errorf("AIRTABLE_BASE_ID is required when using the airtable provider")
		}
	case ProviderMews:
		if c.Mews.AccessToken == "" {
			return fmt.Errorf("MEWS_ACCESS_TOKEN is required when using the mews provider")
		}
		if c.Mews.ClientToken == "" {
			return fmt.Errorf("MEWS_CLIENT_TOKEN is required when using the mews provider")
		}
		if c.Mews.ServiceID == "" {
			return fmt.Errorf("MEWS_SERVICE_ID is required when using the mews provider")
		}
	default:
		return fmt.Errorf("invalid PMS_PROVIDER %q, must be %q or %q", c.Provider, ProviderAirtable, ProviderMews)
	}
	return nil
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
