package siyavula

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lmbotha/lea/config"
	"github.com/lmbotha/lea/internal/models"
	"github.com/lmbotha/lea/pkg/zerolog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(&config.SiyavulaConfig{
		AuthURL:   serverURL + "/get-token",
		VerifyURL: serverURL + "/verify",
		Timeout:   2 * time.Second,
	}, zerolog.NewZerologLogger("test"))
}

func TestClient_RequestToken(t *testing.T) {
	t.Run("provider success is passed through verbatim", func(t *testing.T) {
		var gotPayload map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotPayload)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"client_token":"abc","user_token":"def"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.RequestToken(context.Background(), "learner", "s3cret", "ZA", "CAPS")
		require.NoError(t, err)
		require.True(t, result.Success())
		assert.JSONEq(t, `{"client_token":"abc","user_token":"def"}`, string(result.Tokens))

		// The provider expects "name", not "username".
		assert.Equal(t, "learner", gotPayload["name"])
		assert.Equal(t, "s3cret", gotPayload["password"])
		assert.Equal(t, "ZA", gotPayload["region"])
		assert.Equal(t, "CAPS", gotPayload["curriculum"])
	})

	t.Run("provider error with message field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"invalid credentials"}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.RequestToken(context.Background(), "learner", "wrong", "ZA", "CAPS")
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, models.TokenStatusError, result.Status)
		assert.Equal(t, "invalid credentials", result.Message)
		assert.Equal(t, http.StatusUnauthorized, result.RemoteStatus)
	})

	t.Run("provider error without message field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`upstream blew up`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.RequestToken(context.Background(), "learner", "s3cret", "ZA", "CAPS")
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, MsgAuthFailed, result.Message)
		assert.Equal(t, http.StatusInternalServerError, result.RemoteStatus)
	})

	t.Run("unreachable provider is a transport error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		client := newTestClient(server.URL)
		result, err := client.RequestToken(context.Background(), "learner", "s3cret", "ZA", "CAPS")
		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("unparseable success body is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`not json at all`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.RequestToken(context.Background(), "learner", "s3cret", "ZA", "CAPS")
		require.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("slow provider is cut off by the timeout", func(t *testing.T) {
		release := make(chan struct{})
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-release
		}))
		defer func() {
			close(release)
			server.Close()
		}()

		client := NewClient(&config.SiyavulaConfig{
			AuthURL:   server.URL + "/get-token",
			VerifyURL: server.URL + "/verify",
			Timeout:   50 * time.Millisecond,
		}, zerolog.NewZerologLogger("test"))

		start := time.Now()
		_, err := client.RequestToken(context.Background(), "learner", "s3cret", "ZA", "CAPS")
		require.Error(t, err)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func TestClient_VerifyToken(t *testing.T) {
	t.Run("valid token pair", func(t *testing.T) {
		var gotPath string
		var gotPayload map[string]string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &gotPayload)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"valid":true}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.VerifyToken(context.Background(), "abc", "def")
		require.NoError(t, err)
		assert.True(t, result.Success())
		assert.Equal(t, "/verify", gotPath)
		assert.Equal(t, "abc", gotPayload["client_token"])
		assert.Equal(t, "def", gotPayload["user_token"])
	})

	t.Run("rejected token pair without message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		result, err := client.VerifyToken(context.Background(), "abc", "stale")
		require.NoError(t, err)
		assert.False(t, result.Success())
		assert.Equal(t, MsgVerifyFailed, result.Message)
	})
}

func TestNewClient_DefaultTimeout(t *testing.T) {
	client := NewClient(&config.SiyavulaConfig{
		AuthURL:   "https://www.siyavula.com/api/siyavula/v1/get-token",
		VerifyURL: "https://www.siyavula.com/api/siyavula/v1/verify",
	}, zerolog.NewZerologLogger("test"))
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
