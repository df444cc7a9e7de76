package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c := NewClient("test-key", "base123")
	c.httpc.SetBaseURL(srv.URL + "/base123")
	return c
}

func TestClient_List_PaginatesAndAuthenticates(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "/base123/Rooms", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("offset") == "" {
			json.NewEncoder(w).Encode(listResponse{
				Records: []Record{{ID: "r1"}},
				Offset:  "page2",
			})
			return
		}
		json.NewEncoder(w).Encode(listResponse{Records: []Record{{ID: "r2"}}})
	})

	records, err := c.List(context.Background(), "Rooms", ListOptions{})
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "r1", records[0].ID)
	assert.Equal(t, "r2", records[1].ID)
}

func TestClient_List_PushesFilterFormula(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "{Number} = '101'", r.URL.Query().Get("filterByFormula"))
		assert.Equal(t, "1", r.URL.Query().Get("maxRecords"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(listResponse{Records: []Record{{ID: "r1"}}})
	})

	records, err := c.List(context.Background(), "Rooms", ListOptions{
		FilterByFormula: eq(fieldNumber, "101"),
		MaxRecords:      1,
	})
	assert.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestClient_Find_MissingRecordIsNil(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rec, err := c.Find(context.Background(), "Rooms", "rec404")
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestClient_Create_SendsFieldsEnvelope(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body map[string]map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Jane Doe", body["fields"]["GuestName"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(Record{ID: "bk1", Fields: body["fields"]})
	})

	rec, err := c.Create(context.Background(), "Bookings", map[string]any{"GuestName": "Jane Doe"})
	assert.NoError(t, err)
	assert.Equal(t, "bk1", rec.ID)
}

func TestClient_List_SurfacesBackendStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.List(context.Background(), "Rooms", ListOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}
