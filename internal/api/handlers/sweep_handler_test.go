package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPendingLinks(t *testing.T) {
	env := setupTestEnv(t)
	doc := env.createDocument(t, "file-p", "0811", "0822")

	t.Run("requires a token", func(t *testing.T) {
		w := env.postJSON("/doc/send-pending-links", map[string]string{"phone": "0811"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a bad token", func(t *testing.T) {
		w := env.postJSON("/doc/send-pending-links", map[string]string{"phone": "0811"}, "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing phone", func(t *testing.T) {
		w := env.postJSON("/doc/send-pending-links", map[string]string{}, env.Token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Phone is required", decode(t, w)["error"])
	})

	t.Run("sends the current link", func(t *testing.T) {
		env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62811", gomock.Any()).
			DoAndReturn(func(_ context.Context, _, body string) error {
				assert.Contains(t, body, "contract.pdf")
				assert.Contains(t, body, "code="+doc.Signers[0].Code)
				return nil
			})

		w := env.postJSON("/doc/send-pending-links", map[string]string{"phone": "0811"}, env.Token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, "Sending pending sign links to +62811", decode(t, w)["message"])
	})

	t.Run("not yet their turn", func(t *testing.T) {
		env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62822", "Tidak ada dokumen yang perlu ditandatangani.").Return(nil)

		w := env.postJSON("/doc/send-pending-links", map[string]string{"phone": "0822"}, env.Token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid phone", func(t *testing.T) {
		w := env.postJSON("/doc/send-pending-links", map[string]string{"phone": "x1"}, env.Token)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid phone number: x1", decode(t, w)["error"])
	})
}
