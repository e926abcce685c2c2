package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/linskybing/signflow/internal/domain/document"
	"github.com/linskybing/signflow/internal/testutils"
	"github.com/linskybing/signflow/pkg/codegen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --------------------- Setup ---------------------
func seedDocument(t *testing.T, repos *Repos, fileID string, phones ...string) *document.Document {
	t.Helper()
	var id uint
	err := repos.ExecTx(func(tx *Repos) error {
		doc := &document.Document{FileID: fileID, FileName: fileID + ".pdf", DocStatus: document.DocStatusApproved}
		if err := tx.Document.CreateDocument(doc); err != nil {
			return err
		}
		for i, p := range phones {
			s := &document.Signer{
				DocumentID: doc.ID,
				Phone:      p,
				Code:       fmt.Sprintf("%s-C%d", fileID, i),
				Status:     document.SignerStatusPending,
			}
			if err := tx.Document.CreateSigner(s); err != nil {
				return err
			}
		}
		id = doc.ID
		return nil
	})
	require.NoError(t, err)

	doc, err := repos.Document.FindByID(id)
	require.NoError(t, err)
	return doc
}

// --------------------- Create / Find ---------------------
func TestDocumentRepo_CreateAndFind(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F1", "+62811", "+62822", "+62833")

	require.Len(t, doc.Signers, 3)
	assert.Equal(t, "+62811", doc.Signers[0].Phone)
	assert.Equal(t, "+62833", doc.Signers[2].Phone)
	assert.False(t, doc.IsSigned)
	assert.Equal(t, document.DocStatusApproved, doc.DocStatus)

	byFile, err := repos.Document.FindByFileID("F1")
	require.NoError(t, err)
	assert.Equal(t, doc.ID, byFile.ID)
	assert.Len(t, byFile.Signers, 3)

	s, err := repos.Document.FindSignerByCode("F1-C1")
	require.NoError(t, err)
	assert.Equal(t, "+62822", s.Phone)
	assert.Equal(t, doc.ID, s.DocumentID)
}

func TestDocumentRepo_NotFound(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))

	_, err := repos.Document.FindSignerByCode("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repos.Document.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repos.Document.FindByFileID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentRepo_DuplicateCodeRollsBackDocument(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	repos := NewRepositories(gdb)

	err := repos.ExecTx(func(tx *Repos) error {
		doc := &document.Document{FileID: "DUP", FileName: "dup.pdf", DocStatus: document.DocStatusApproved}
		if err := tx.Document.CreateDocument(doc); err != nil {
			return err
		}
		for _, p := range []string{"+62811", "+62822"} {
			s := &document.Signer{DocumentID: doc.ID, Phone: p, Code: "SAME", Status: document.SignerStatusPending}
			if err := tx.Document.CreateSigner(s); err != nil {
				return err
			}
		}
		return nil
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, gdb.Model(&document.Document{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, gdb.Model(&document.Signer{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestExecTx_RollsBackOnError(t *testing.T) {
	gdb := testutils.NewSQLiteDB(t)
	repos := NewRepositories(gdb)
	boom := errors.New("boom")

	err := repos.ExecTx(func(tx *Repos) error {
		doc := &document.Document{FileID: "RB", FileName: "rb.pdf", DocStatus: document.DocStatusApproved}
		if err := tx.Document.CreateDocument(doc); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repos.Document.FindByFileID("RB")
	assert.ErrorIs(t, err, ErrNotFound)
}

// --------------------- Conditional updates ---------------------
func TestDocumentRepo_MarkSignerSigned(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F2", "+62811")
	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repos.Document.MarkSignerSigned(doc.Signers[0].ID, at))
	assert.ErrorIs(t, repos.Document.MarkSignerSigned(doc.Signers[0].ID, at), ErrStaleState)
	assert.ErrorIs(t, repos.Document.MarkSignerRejected(doc.Signers[0].ID, at), ErrStaleState)

	s, err := repos.Document.FindSignerByCode("F2-C0")
	require.NoError(t, err)
	assert.Equal(t, document.SignerStatusSigned, s.Status)
	require.NotNil(t, s.SignedAt)
	assert.True(t, s.SignedAt.Equal(at))
}

func TestDocumentRepo_MarkSignerRejectedKeepsOwnTime(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F5", "+62811", "+62822")
	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	require.NoError(t, repos.Document.MarkSignerRejected(doc.Signers[0].ID, first))
	require.NoError(t, repos.Document.MarkSignerRejected(doc.Signers[1].ID, second))
	assert.ErrorIs(t, repos.Document.MarkSignerRejected(doc.Signers[1].ID, second), ErrStaleState)

	got, err := repos.Document.FindByID(doc.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Signers[0].RejectedAt)
	require.NotNil(t, got.Signers[1].RejectedAt)
	assert.True(t, got.Signers[0].RejectedAt.Equal(first))
	assert.True(t, got.Signers[1].RejectedAt.Equal(second))
	assert.Nil(t, got.Signers[1].SignedAt)
}

func TestDocumentRepo_LockDocument(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F6", "+62811")

	err := repos.ExecTx(func(tx *Repos) error {
		return tx.Document.LockDocument(doc.ID)
	})
	assert.NoError(t, err)

	err = repos.ExecTx(func(tx *Repos) error {
		return tx.Document.LockDocument(doc.ID + 100)
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentRepo_MarkDocumentSignedThenRejectIsStale(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F3", "+62811")
	now := time.Now().UTC()

	require.NoError(t, repos.Document.MarkDocumentSigned(doc.ID, now))
	assert.ErrorIs(t, repos.Document.MarkDocumentSigned(doc.ID, now), ErrStaleState)
	assert.ErrorIs(t, repos.Document.MarkDocumentRejected(doc.ID, "late", "+62811", now), ErrStaleState)

	got, err := repos.Document.FindByID(doc.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSigned)
	assert.Equal(t, document.DocStatusApproved, got.DocStatus)
	assert.Nil(t, got.RejectedAt)
}

func TestDocumentRepo_MarkDocumentRejectedSetsAllFields(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	doc := seedDocument(t, repos, "F4", "+62811")
	now := time.Now().UTC()

	require.NoError(t, repos.Document.MarkDocumentRejected(doc.ID, "wrong terms", "+62811", now))

	got, err := repos.Document.FindByID(doc.ID)
	require.NoError(t, err)
	assert.Equal(t, document.DocStatusRejected, got.DocStatus)
	require.NotNil(t, got.RejectReason)
	require.NotNil(t, got.RejectedBy)
	require.NotNil(t, got.RejectedAt)
	assert.Equal(t, "wrong terms", *got.RejectReason)
	assert.Equal(t, "+62811", *got.RejectedBy)
	assert.ErrorIs(t, repos.Document.MarkDocumentSigned(doc.ID, now), ErrStaleState)
}

// --------------------- ListPendingSignersByPhone ---------------------
func TestDocumentRepo_ListPendingSignersByPhone(t *testing.T) {
	repos := NewRepositories(testutils.NewSQLiteDB(t))
	open := seedDocument(t, repos, "OPEN", "+62811", "+62822")
	rejected := seedDocument(t, repos, "REJ", "+62822")
	done := seedDocument(t, repos, "DONE", "+62822")
	now := time.Now()

	require.NoError(t, repos.Document.MarkDocumentRejected(rejected.ID, "no", "+62822", now))
	require.NoError(t, repos.Document.MarkDocumentSigned(done.ID, now))

	signers, err := repos.Document.ListPendingSignersByPhone("+62822")
	require.NoError(t, err)
	require.Len(t, signers, 1)
	assert.Equal(t, open.ID, signers[0].DocumentID)
	assert.Equal(t, "OPEN-C1", signers[0].Code)

	require.NoError(t, repos.Document.MarkSignerSigned(open.Signers[1].ID, now))
	signers, err = repos.Document.ListPendingSignersByPhone("+62822")
	require.NoError(t, err)
	assert.Empty(t, signers)
}

// --------------------- Code round trip ---------------------
func TestFindSignerByCode_GeneratedCodesRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("inserts 10k signers")
	}
	gdb := testutils.NewSQLiteDB(t)
	repos := NewRepositories(gdb)
	doc := seedDocument(t, repos, "BULK")

	err := gdb.Transaction(func(tx *gorm.DB) error {
		docs := repos.Document.WithTx(tx)
		for i := 0; i < 10000; i++ {
			s := &document.Signer{DocumentID: doc.ID, Phone: "+62811", Code: codegen.New(), Status: document.SignerStatusPending}
			if err := docs.CreateSigner(s); err != nil {
				return err
			}
			found, err := docs.FindSignerByCode(s.Code)
			if err != nil {
				return err
			}
			if found.ID != s.ID {
				return fmt.Errorf("code %s resolved to signer %d, want %d", s.Code, found.ID, s.ID)
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWithTx_NilKeepsRepo(t *testing.T) {
	repo := NewDocumentRepo(testutils.NewSQLiteDB(t))
	assert.Same(t, repo, repo.WithTx((*gorm.DB)(nil)))
}
