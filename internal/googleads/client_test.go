package googleads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := NewClient(ClientConfig{
		DeveloperToken: "dev-token",
		AccessToken:    "access-token",
		BaseURL:        srv.URL,
	})
	require.NoError(t, err)
	return c, srv
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ClientConfig{AccessToken: "a"})
	require.Error(t, err)

	_, err = NewClient(ClientConfig{DeveloperToken: "d"})
	require.Error(t, err)

	c, err := NewClient(ClientConfig{DeveloperToken: "d", AccessToken: "a"})
	require.NoError(t, err)
	assert.Equal(t, defaultBaseURL, c.baseURL)
}

func TestClientMutate(t *testing.T) {
	t.Run("posts to the kind's mutate endpoint with auth headers", func(t *testing.T) {
		var gotPath, gotAuth, gotDevToken string
		var gotBody mutateRequest

		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAuth = r.Header.Get("Authorization")
			gotDevToken = r.Header.Get("developer-token")
			_ = json.NewDecoder(r.Body).Decode(&gotBody)
			_ = json.NewEncoder(w).Encode(MutateResponse{Results: []MutateResult{
				{ResourceName: "customers/9/adGroups/1"},
			}})
		})

		ops := []Operation{NewCreate(KindAdGroup, AdGroup{Name: "g"})}
		resp, err := c.Mutate(context.Background(), "9", KindAdGroup, ops)
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)

		assert.Equal(t, "/customers/9/adGroups:mutate", gotPath)
		assert.Equal(t, "Bearer access-token", gotAuth)
		assert.Equal(t, "dev-token", gotDevToken)
		require.Len(t, gotBody.Operations, 1)
	})

	t.Run("login customer id header set only when configured", func(t *testing.T) {
		var got string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.Header.Get("login-customer-id")
			_ = json.NewEncoder(w).Encode(MutateResponse{Results: []MutateResult{{ResourceName: "customers/9/ads/1"}}})
		}))
		defer srv.Close()

		c, err := NewClient(ClientConfig{
			DeveloperToken:  "d",
			AccessToken:     "a",
			LoginCustomerID: "777",
			BaseURL:         srv.URL,
		})
		require.NoError(t, err)

		_, err = c.Mutate(context.Background(), "9", KindAd, []Operation{NewRemove(KindAd, "customers/9/ads/1")})
		require.NoError(t, err)
		assert.Equal(t, "777", got)
	})

	t.Run("error envelope becomes an APIError with the failure detail", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("request-id", "req-42")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{
				"error": {
					"code": 400,
					"message": "Request contains an invalid argument.",
					"status": "INVALID_ARGUMENT",
					"details": [{
						"@type": "type.googleapis.com/google.ads.googleads.v17.errors.GoogleAdsFailure",
						"errors": [{"message": "Too long.", "errorCode": {"adError": "TOO_LONG"}}],
						"requestId": "req-42"
					}]
				}
			}`))
		})

		_, err := c.Mutate(context.Background(), "9", KindAdGroupAd, []Operation{
			NewCreate(KindAdGroupAd, AdGroupAd{}),
		})
		require.Error(t, err)

		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, "INVALID_ARGUMENT", apiErr.Status)
		assert.Equal(t, "req-42", apiErr.RequestID)
		require.NotNil(t, apiErr.Failure)
		require.Len(t, apiErr.Failure.Errors, 1)
		assert.Equal(t, "Too long.", apiErr.Failure.Errors[0].Message)
	})

	t.Run("non-JSON error body still yields a usable error", func(t *testing.T) {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream unavailable"))
		})

		_, err := c.Mutate(context.Background(), "9", KindAdGroup, []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "g"}),
		})
		apiErr, ok := err.(*APIError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Equal(t, "upstream unavailable", apiErr.Message)
	})

	t.Run("rate limiting is retried", func(t *testing.T) {
		var calls int
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_ = json.NewEncoder(w).Encode(MutateResponse{Results: []MutateResult{
				{ResourceName: "customers/9/adGroups/1"},
			}})
		})

		resp, err := c.Mutate(context.Background(), "9", KindAdGroup, []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "g"}),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		require.Len(t, resp.Results, 1)
	})

	t.Run("mutate failures are not retried", func(t *testing.T) {
		var calls int
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"status":"INVALID_ARGUMENT","message":"bad"}}`))
		})

		_, err := c.Mutate(context.Background(), "9", KindAdGroup, []Operation{
			NewCreate(KindAdGroup, AdGroup{Name: "g"}),
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}

func TestParseAPIErrorIgnoresForeignDetails(t *testing.T) {
	body := []byte(`{
		"error": {
			"status": "INVALID_ARGUMENT",
			"message": "bad",
			"details": [
				{"@type": "type.googleapis.com/google.rpc.BadRequest"},
				{"@type": "type.googleapis.com/google.ads.googleads.v17.errors.GoogleAdsFailure",
				 "errors": [{"message": "real failure"}]}
			]
		}
	}`)
	apiErr := parseAPIError(400, body)
	require.NotNil(t, apiErr.Failure)
	require.Len(t, apiErr.Failure.Errors, 1)
	assert.Equal(t, "real failure", apiErr.Failure.Errors[0].Message)
}
