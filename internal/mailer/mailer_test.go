package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMessage() Message {
	return Message{
		From:    "Teaser <noreply@example.com>",
		To:      []string{"sales@example.com"},
		ReplyTo: "investor@example.com",
		Bcc:     []string{"audit@example.com"},
		Subject: "Investment request",
		HTML:    "<p>Hello</p>",
	}
}

func TestSend_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Teaser <noreply@example.com>", body["from"])
		assert.Equal(t, []any{"sales@example.com"}, body["to"])
		assert.Equal(t, "investor@example.com", body["reply_to"])
		assert.Equal(t, []any{"audit@example.com"}, body["bcc"])
		assert.Equal(t, "<p>Hello</p>", body["html"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	}))
	defer srv.Close()

	client := NewClient("re_test", WithBaseURL(srv.URL+"/"))
	resp, err := client.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.True(t, resp.OK)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", resp.Body["id"])
}

func TestSend_OmitsEmptyOptionalFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "bcc")
		assert.NotContains(t, body, "reply_to")
		w.Write([]byte(`{"id":"x"}`))
	}))
	defer srv.Close()

	msg := testMessage()
	msg.Bcc = nil
	msg.ReplyTo = ""

	_, err := NewClient("k", WithBaseURL(srv.URL)).Send(context.Background(), msg)
	require.NoError(t, err)
}

func TestSend_ProviderRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	defer srv.Close()

	resp, err := NewClient("k", WithBaseURL(srv.URL)).Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "validation_error", resp.Body["name"])
	assert.Equal(t, "Invalid from field", resp.Body["message"])
}

func TestSend_PlainTextError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable\n"))
	}))
	defer srv.Close()

	resp, err := NewClient("k", WithBaseURL(srv.URL)).Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.False(t, resp.OK)
	assert.Equal(t, "upstream unavailable", resp.Body["message"])
}

func TestSend_MalformedSuccessBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := NewClient("k", WithBaseURL(srv.URL)).Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmarshal response")
}

func TestSend_TransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))
	_, err := client.Send(context.Background(), testMessage())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "send request")
}

func TestWithTimeout_OptionOrder(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	own := srv.Client()
	client := NewClient("k", WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond), WithHTTPClient(own))

	_, err := client.Send(context.Background(), testMessage())
	require.Error(t, err, "timeout set before the HTTP client must still apply")
	assert.Zero(t, own.Timeout, "caller's HTTP client must not be modified")
	assert.Equal(t, 20*time.Millisecond, client.(*httpClient).http.Timeout)
}

func TestSend_CustomHTTPClient(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"y"}`))
	}))
	defer srv.Close()

	client := NewClient("k", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	resp, err := client.Send(context.Background(), testMessage())

	require.NoError(t, err)
	assert.Equal(t, "y", resp.Body["id"])
}
