package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/signflow/internal/domain/notification"
	"github.com/linskybing/signflow/internal/repository/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPostCallback_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mock.NewMockNotificationRepo(ctrl)

	var got CallbackEvent
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	logs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *notification.NotificationLog) error {
		assert.Equal(t, notification.ChannelCallback, entry.Channel)
		assert.Equal(t, "F1", entry.FileID)
		assert.Equal(t, notification.StatusSent, entry.Status)
		return nil
	})

	p := NewCallbackPoster(time.Second, logs, zap.NewNop())
	now := time.Now().UTC()
	err := p.PostCallback(context.Background(), srv.URL, CallbackEvent{FileID: "F1", Status: "approved", IsSigned: true, SignedAt: &now})
	require.NoError(t, err)
	assert.Equal(t, "F1", got.FileID)
	assert.True(t, got.IsSigned)
}

func TestPostCallback_Non2xx(t *testing.T) {
	ctrl := gomock.NewController(t)
	logs := mock.NewMockNotificationRepo(ctrl)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	logs.EXPECT().Create(gomock.Any()).DoAndReturn(func(entry *notification.NotificationLog) error {
		assert.Equal(t, notification.StatusFailed, entry.Status)
		return nil
	})

	p := NewCallbackPoster(time.Second, logs, zap.NewNop())
	err := p.PostCallback(context.Background(), srv.URL, CallbackEvent{FileID: "F1", Status: "rejected"})
	assert.ErrorContains(t, err, "502")
}
