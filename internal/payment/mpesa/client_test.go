package mpesa

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(authURL, pushURL string) Config {
	return Config{
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		ShortCode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://example.com/callback",
		AuthURL:        authURL,
		STKPushURL:     pushURL,
		Timeout:        2 * time.Second,
	}
}

func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("requires credentials", func(t *testing.T) {
		t.Parallel()

		_, err := NewClient(Config{AuthURL: "http://a", STKPushURL: "http://b"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("requires endpoints", func(t *testing.T) {
		t.Parallel()

		_, err := NewClient(Config{ConsumerKey: "k", ConsumerSecret: "s"})
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestClient_SendSTKPush(t *testing.T) {
	t.Parallel()

	t.Run("successful push", func(t *testing.T) {
		t.Parallel()

		var sawAuth, sawPush bool
		mux := http.NewServeMux()
		mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
			sawAuth = true
			user, pass, ok := r.BasicAuth()
			assert.True(t, ok)
			assert.Equal(t, "key", user)
			assert.Equal(t, "secret", pass)
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
		})
		mux.HandleFunc("/stkpush", func(w http.ResponseWriter, r *http.Request) {
			sawPush = true
			assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))

			var payload map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "174379", payload["BusinessShortCode"])
			assert.Equal(t, "254712345678", payload["PhoneNumber"])
			assert.Equal(t, "CustomerPayBillOnline", payload["TransactionType"])
			assert.Equal(t, float64(1500), payload["Amount"])

			// Password is base64(shortcode+passkey+timestamp), timestamp in
			// the payload must match what was encoded.
			raw, err := base64.StdEncoding.DecodeString(payload["Password"].(string))
			require.NoError(t, err)
			assert.Equal(t, "174379passkey"+payload["Timestamp"].(string), string(raw))

			_, _ = w.Write([]byte(`{
				"MerchantRequestID":"m-1",
				"CheckoutRequestID":"c-1",
				"ResponseCode":"0",
				"ResponseDescription":"Success. Request accepted for processing",
				"CustomerMessage":"Success. Request accepted for processing"
			}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL+"/oauth", srv.URL+"/stkpush"))
		require.NoError(t, err)

		res, err := client.SendSTKPush(context.Background(), "254712345678", 1500)
		require.NoError(t, err)

		assert.True(t, sawAuth)
		assert.True(t, sawPush)
		assert.Equal(t, "m-1", res.MerchantRequestID)
		assert.Equal(t, "c-1", res.CheckoutRequestID)
		assert.Equal(t, "0", res.ResponseCode)
	})

	t.Run("token fetch failure aborts the push", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		})
		mux.HandleFunc("/stkpush", func(w http.ResponseWriter, r *http.Request) {
			t.Error("push endpoint must not be reached without a token")
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL+"/oauth", srv.URL+"/stkpush"))
		require.NoError(t, err)

		_, err = client.SendSTKPush(context.Background(), "254712345678", 100)
		assert.ErrorIs(t, err, ErrTokenRequestFailed)
	})

	t.Run("gateway rejection", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/oauth", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
		})
		mux.HandleFunc("/stkpush", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"errorMessage":"Invalid PhoneNumber"}`, http.StatusBadRequest)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		client, err := NewClient(testConfig(srv.URL+"/oauth", srv.URL+"/stkpush"))
		require.NoError(t, err)

		_, err = client.SendSTKPush(context.Background(), "bogus", 100)
		assert.ErrorIs(t, err, ErrPushRejected)
	})

	t.Run("unreachable gateway", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":"3599"}`))
		}))
		authURL := srv.URL
		srv.Close()

		client, err := NewClient(testConfig(authURL, authURL+"/stkpush"))
		require.NoError(t, err)

		_, err = client.SendSTKPush(context.Background(), "254712345678", 100)
		assert.ErrorIs(t, err, ErrTokenRequestFailed)
	})
}
