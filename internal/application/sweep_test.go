package application

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendPendingLinks_OnlyCurrentTurns(t *testing.T) {
	env := setupServiceEnv(t)
	docs := NewDocumentService(env.Deps)
	sweep := NewSweepService(env.Deps)

	// +62822 is second on the first document and first on the second.
	waiting := env.createDocument(t, docs, CreateDocumentInput{FileName: "a.pdf", Phones: []string{"0811111111", "0822222222"}})
	current := env.createDocument(t, docs, CreateDocumentInput{FileName: "b.pdf", Phones: []string{"0822222222"}, UseStempel: true})

	env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62822222222", gomock.Any()).
		DoAndReturn(func(ctx context.Context, phone, body string) error {
			assert.Contains(t, body, "*b.pdf*")
			assert.Contains(t, body, "code="+current.Signers[0].Code)
			assert.Contains(t, body, "stempelSigner=TRUE")
			return nil
		})

	sent, err := sweep.SendPendingLinks(context.Background(), "+62822222222")
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	env.expectUpdate(waiting.FileID)
	env.Notifier.EXPECT().NotifySignRequest(gomock.Any(), "+62822222222", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	_, err = docs.RecordSignature(context.Background(), signInput(waiting, 0))
	require.NoError(t, err)

	env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62822222222", gomock.Any()).Return(nil).Times(2)
	sent, err = sweep.SendPendingLinks(context.Background(), "+62822222222")
	require.NoError(t, err)
	assert.Equal(t, 2, sent)
}

func TestSendPendingLinks_NothingPending(t *testing.T) {
	env := setupServiceEnv(t)
	sweep := NewSweepService(env.Deps)

	env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62899", "Tidak ada dokumen yang perlu ditandatangani.").Return(nil)

	sent, err := sweep.SendPendingLinks(context.Background(), "+62899")
	require.NoError(t, err)
	assert.Zero(t, sent)
}

func TestSendPendingLinks_FailureContinues(t *testing.T) {
	env := setupServiceEnv(t)
	docs := NewDocumentService(env.Deps)
	sweep := NewSweepService(env.Deps)
	env.createDocument(t, docs, CreateDocumentInput{FileName: "a.pdf", Phones: []string{"0822222222"}})
	env.createDocument(t, docs, CreateDocumentInput{FileName: "b.pdf", Phones: []string{"0822222222"}})

	gomock.InOrder(
		env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62822222222", gomock.Any()).Return(errBoom),
		env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62822222222", gomock.Any()).Return(nil),
	)

	sent, err := sweep.SendPendingLinks(context.Background(), "+62822222222")
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, sent)
}

func TestTrigger_RunsDetached(t *testing.T) {
	env := setupServiceEnv(t)
	sweep := NewSweepService(env.Deps)

	env.Notifier.EXPECT().NotifyText(gomock.Any(), "+62833333333", gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	phone, err := sweep.Trigger(ctx, "0833333333")
	require.NoError(t, err)
	assert.Equal(t, "+62833333333", phone)
	assert.Equal(t, []string{"pending-links"}, env.Tasks.names)
	assert.Empty(t, env.Tasks.errs)

	_, err = sweep.Trigger(context.Background(), "08x")
	var phoneErr *InvalidPhoneError
	assert.ErrorAs(t, err, &phoneErr)
}
