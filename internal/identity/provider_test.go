package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProviderServer(t *testing.T, status int, profile *Profile) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.WriteHeader(status)
		if profile != nil {
			_ = json.NewEncoder(w).Encode(profile)
		}
	}))
}

func TestProviderClient_PrimaryEmail_Primary(t *testing.T) {
	srv := newProviderServer(t, http.StatusOK, &Profile{
		ID:             "sub_1",
		PrimaryEmailID: "em_2",
		EmailAddresses: []EmailAddress{
			{ID: "em_1", EmailAddress: "old@example.com"},
			{ID: "em_2", EmailAddress: "current@example.com"},
		},
	})
	defer srv.Close()

	c := NewProviderClient(srv.URL, "test-key")

	email, err := c.PrimaryEmail(context.Background(), "sub_1")

	require.NoError(t, err)
	assert.Equal(t, "current@example.com", email)
}

func TestProviderClient_PrimaryEmail_FallbackToFirst(t *testing.T) {
	srv := newProviderServer(t, http.StatusOK, &Profile{
		ID:             "sub_1",
		PrimaryEmailID: "em_missing",
		EmailAddresses: []EmailAddress{
			{ID: "em_1", EmailAddress: "only@example.com"},
		},
	})
	defer srv.Close()

	c := NewProviderClient(srv.URL, "test-key")

	email, err := c.PrimaryEmail(context.Background(), "sub_1")

	require.NoError(t, err)
	assert.Equal(t, "only@example.com", email)
}

func TestProviderClient_PrimaryEmail_NoAddresses(t *testing.T) {
	srv := newProviderServer(t, http.StatusOK, &Profile{ID: "sub_1"})
	defer srv.Close()

	c := NewProviderClient(srv.URL, "test-key")

	email, err := c.PrimaryEmail(context.Background(), "sub_1")

	require.NoError(t, err)
	assert.Empty(t, email)
}

func TestProviderClient_PrimaryEmail_ProviderError(t *testing.T) {
	srv := newProviderServer(t, http.StatusNotFound, nil)
	defer srv.Close()

	c := NewProviderClient(srv.URL, "test-key")

	_, err := c.PrimaryEmail(context.Background(), "sub_missing")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
