package messaging

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, reply string, captured *messageRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/messages", r.URL.Path)
		assert.Equal(t, "12345", r.URL.Query().Get("phone_number_id"))
		assert.Equal(t, "1", r.URL.Query().Get("no_save"))
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
}

func TestSendTemplate(t *testing.T) {
	var got messageRequest
	srv := newTestServer(t, http.StatusOK, `{"messages":[{"id":"wamid.1"}]}`, &got)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, PhoneNumberID: "12345", AccessKey: "secret"})
	tpl := Template{Namespace: "ns", Name: "sign_request", Language: "id"}

	receipt, err := c.SendTemplate(context.Background(), "+6281234567890", tpl, "contract.pdf", "ACME", "https://sign/x")
	require.NoError(t, err)
	assert.JSONEq(t, `{"messages":[{"id":"wamid.1"}]}`, string(receipt))

	assert.Equal(t, "template", got.Type)
	assert.Equal(t, "+6281234567890", got.To)
	require.NotNil(t, got.Template)
	assert.Equal(t, "sign_request", got.Template.Name)
	assert.Equal(t, "id", got.Template.Language.Code)
	require.Len(t, got.Template.Components, 1)
	require.Len(t, got.Template.Components[0].Parameters, 3)
	assert.Equal(t, "https://sign/x", got.Template.Components[0].Parameters[2].Text)
}

func TestSendText(t *testing.T) {
	var got messageRequest
	srv := newTestServer(t, http.StatusOK, `ok`, &got)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, PhoneNumberID: "12345", AccessKey: "secret"})
	receipt, err := c.SendText(context.Background(), "+6281234567890", "hello")
	require.NoError(t, err)
	assert.Equal(t, `"ok"`, string(receipt))

	assert.Equal(t, "text", got.Type)
	require.NotNil(t, got.Text)
	assert.Equal(t, "hello", got.Text.Body)
	assert.Nil(t, got.Template)
}

func TestSend_GatewayError(t *testing.T) {
	var got messageRequest
	srv := newTestServer(t, http.StatusBadGateway, `{"error":"down"}`, &got)
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, PhoneNumberID: "12345", AccessKey: "secret"})
	_, err := c.SendText(context.Background(), "+6281234567890", "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
