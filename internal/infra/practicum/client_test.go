package practicum

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"homework_notification_bot/internal/domain/homework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusesOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "OAuth secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "1234", r.URL.Query().Get("from_date"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"homeworks": [{"homework_name": "hw1", "status": "approved"}], "current_date": 42}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "secret-token")
	payload, err := client.Statuses(context.Background(), 1234)
	require.NoError(t, err)

	resp, err := homework.CheckResponse(payload)
	require.NoError(t, err)
	require.Len(t, resp.Homeworks, 1)
	assert.Equal(t, int64(42), resp.CurrentDate)
}

func TestStatusesNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "secret-token")
	_, err := client.Statuses(context.Background(), 0)
	require.ErrorIs(t, err, homework.ErrEndpointUnavailable)
}

func TestStatusesUnexpectedCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "secret-token")
	_, err := client.Statuses(context.Background(), 0)
	require.ErrorIs(t, err, homework.ErrUnexpectedStatusCode)
	assert.Contains(t, err.Error(), "500")
}

func TestStatusesMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"homeworks": [`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "secret-token")
	_, err := client.Statuses(context.Background(), 0)
	require.ErrorIs(t, err, homework.ErrMalformedPayload)
}

func TestStatusesConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client := NewAPIClient(server.URL, "secret-token")
	_, err := client.Statuses(context.Background(), 0)
	require.ErrorIs(t, err, homework.ErrEndpointUnavailable)
}
