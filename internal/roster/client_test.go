package roster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vengeful-vineyard/backend/internal/domain"
)

func TestFetchUsers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results": [
			{"id": 101, "first_name": "Ola", "last_name": "Nordmann", "email": "ola@example.com"},
			{"id": 102, "first_name": "Kari", "last_name": "Nordmann", "email": null}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	users, err := client.FetchUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)

	assert.Equal(t, domain.OWUserID(101), users[0].OWUserID)
	assert.Equal(t, "Ola", users[0].FirstName)
	require.NotNil(t, users[0].Email)
	assert.Equal(t, "ola@example.com", *users[0].Email)
	assert.Nil(t, users[1].Email)
}

func TestFetchUsers_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.FetchUsers(context.Background())
	assert.Error(t, err)
}

func TestFetchUsers_MalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": "nope"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)

	_, err := client.FetchUsers(context.Background())
	assert.Error(t, err)
}
