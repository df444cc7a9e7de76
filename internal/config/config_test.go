package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_AirtableProviderRequiresKeys(t *testing.T) {
	t.Setenv("PMS_PROVIDER", "airtable")
	t.Setenv("AIRTABLE_API_KEY", "")
	t.Setenv("AIRTABLE_BASE_ID", "")

	_, err := Load()
	assert.ErrorContains(t, err, "AIRTABLE_API_KEY")
}

func TestLoad_MewsProviderRequiresTokens(t *testing.T) {
	t.Setenv("PMS_PROVIDER", "mews")
	t.Setenv("MEWS_ACCESS_TOKEN", "")

	_, err := Load()
	assert.ErrorContains(t, err, "MEWS_ACCESS_TOKEN")
}

func TestLoad_UnknownProviderRejected(t *testing.T) {
	t.Setenv("PMS_PROVIDER", "opera")

	_, err := Load()
	assert.ErrorContains(t, err, "PMS_PROVIDER")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PMS_PROVIDER", "airtable")
	t.Setenv("AIRTABLE_API_KEY", "key")
	t.Setenv("AIRTABLE_BASE_ID", "base")
	t.Setenv("PORT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "Rooms", cfg.Airtable.Tables.Rooms)
	assert.Equal(t, "Bookings", cfg.Airtable.Tables.Bookings)
}

func TestTelemetry_Enabled(t *testing.T) {
	assert.False(t, Telemetry{}.Enabled())
	assert.False(t, Telemetry{PublicKey: "pk"}.Enabled())
	assert.True(t, Telemetry{PublicKey: "pk", SecretKey: "sk"}.Enabled())
}
