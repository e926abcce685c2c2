package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docWith(statuses ...SignerStatus) *Document {
	d := &Document{DocStatus: DocStatusApproved}
	for i, st := range statuses {
		d.Signers = append(d.Signers, Signer{ID: uint(i + 1), Phone: string(rune('a' + i)), Status: st})
	}
	return d
}

func TestAllSigned(t *testing.T) {
	assert.False(t, docWith().AllSigned())
	assert.False(t, docWith(SignerStatusSigned, SignerStatusPending).AllSigned())
	assert.False(t, docWith(SignerStatusSigned, SignerStatusRejected).AllSigned())
	assert.True(t, docWith(SignerStatusSigned, SignerStatusSigned).AllSigned())
}

func TestNextPendingAfter(t *testing.T) {
	d := docWith(SignerStatusPending, SignerStatusSigned, SignerStatusRejected, SignerStatusPending, SignerStatusPending)

	next := d.NextPendingAfter(2)
	require.NotNil(t, next)
	assert.Equal(t, uint(4), next.ID)

	// never re-offered to an earlier pending signer
	assert.Nil(t, d.NextPendingAfter(5))
	assert.Nil(t, d.NextPendingAfter(99))
}

func TestNextPendingAfter_OnlyRejectedRemain(t *testing.T) {
	d := docWith(SignerStatusSigned, SignerStatusRejected)
	assert.Nil(t, d.NextPendingAfter(1))
}

func TestIsCurrent(t *testing.T) {
	d := docWith(SignerStatusSigned, SignerStatusPending, SignerStatusPending)

	assert.False(t, d.IsCurrent(1))
	assert.True(t, d.IsCurrent(2))
	assert.False(t, d.IsCurrent(3))

	d.DocStatus = DocStatusRejected
	assert.False(t, d.IsCurrent(2))
}

func TestSignedPhonesAndRejected(t *testing.T) {
	d := docWith(SignerStatusSigned, SignerStatusRejected, SignerStatusSigned)

	assert.Equal(t, []string{"a", "c"}, d.SignedPhones())
	assert.True(t, d.AnyRejected())
	assert.False(t, docWith(SignerStatusPending).AnyRejected())
}

func TestCCList(t *testing.T) {
	d := &Document{CarbonCopy: " a@x.com, ,b@y.com "}
	assert.Equal(t, []string{"a@x.com", "b@y.com"}, d.CCList())
	assert.Nil(t, (&Document{}).CCList())
}

func TestParseStempel(t *testing.T) {
	for in, want := range map[string]bool{"true": true, "TRUE": true, " 1 ": true, "0": false, "": false, "yes": false} {
		assert.Equal(t, want, ParseStempel(in), in)
	}
}
