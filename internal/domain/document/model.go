package document

import (
	"strings"
	"time"
)

type DocStatus string

const (
	DocStatusApproved DocStatus = "approved"
	DocStatusRejected DocStatus = "rejected"
)

type SignerStatus string

const (
	SignerStatusPending  SignerStatus = "pending"
	SignerStatusSigned   SignerStatus = "signed"
	SignerStatusRejected SignerStatus = "rejected"
)

// Document is one uploaded file and the ordered queue of people who must
// sign it. Signers are kept in insertion order, which is signing order.
type Document struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ReferenceID  *string    `json:"reference_id" gorm:"size:255"`
	FileID       string     `json:"file_id" gorm:"size:255;not null;uniqueIndex"`
	FileName     string     `json:"file_name" gorm:"size:255;not null"`
	OwnerEmail   string     `json:"owner_email" gorm:"size:255"`
	CarbonCopy   string     `json:"carbon_copy" gorm:"type:text"`
	CallbackURL  *string    `json:"callback_url" gorm:"type:text"`
	IsSigned     bool       `json:"is_signed" gorm:"not null;default:false"`
	SignedAt     *time.Time `json:"signed_at"`
	DocStatus    DocStatus  `json:"doc_status" gorm:"size:16;not null;default:'approved'"`
	RejectedAt   *time.Time `json:"rejected_at"`
	RejectReason *string    `json:"reject_reason" gorm:"type:text"`
	RejectedBy   *string    `json:"rejected_by" gorm:"size:32"`
	UseStempel   bool       `json:"use_stempel" gorm:"not null;default:false"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Signers      []Signer   `json:"signers" gorm:"foreignKey:DocumentID"`
}

type Signer struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	DocumentID uint         `json:"document_id" gorm:"not null;index"`
	Phone      string       `json:"phone" gorm:"size:32;not null;index"`
	Code       string       `json:"code" gorm:"size:20;not null;uniqueIndex"`
	Status     SignerStatus `json:"status" gorm:"size:16;not null;default:'pending'"`
	SignedAt   *time.Time   `json:"signed_at"`
	RejectedAt *time.Time   `json:"rejected_at"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (d *Document) IsRejected() bool {
	return d.DocStatus == DocStatusRejected
}

// AllSigned reports whether every signer has signed. A document without
// signers is never considered signed.
func (d *Document) AllSigned() bool {
	if len(d.Signers) == 0 {
		return false
	}
	for _, s := range d.Signers {
		if s.Status != SignerStatusSigned {
			return false
		}
	}
	return true
}

// AnyRejected reports whether some signer rejected the document.
func (d *Document) AnyRejected() bool {
	for _, s := range d.Signers {
		if s.Status == SignerStatusRejected {
			return true
		}
	}
	return false
}

// IndexOf returns the position of the signer with the given id, or -1.
func (d *Document) IndexOf(signerID uint) int {
	for i, s := range d.Signers {
		if s.ID == signerID {
			return i
		}
	}
	return -1
}

// NextPendingAfter returns the first pending signer strictly after the
// signer with the given id. Earlier pending signers are never offered.
func (d *Document) NextPendingAfter(signerID uint) *Signer {
	idx := d.IndexOf(signerID)
	if idx < 0 {
		return nil
	}
	for i := idx + 1; i < len(d.Signers); i++ {
		if d.Signers[i].Status == SignerStatusPending {
			return &d.Signers[i]
		}
	}
	return nil
}

// SignedPhones lists the phones of signers who already signed, in order.
func (d *Document) SignedPhones() []string {
	var phones []string
	for _, s := range d.Signers {
		if s.Status == SignerStatusSigned {
			phones = append(phones, s.Phone)
		}
	}
	return phones
}

// IsCurrent reports whether it is the signer's turn: pending, on an open
// document, with every earlier signer already signed.
func (d *Document) IsCurrent(signerID uint) bool {
	if d.IsSigned || d.IsRejected() {
		return false
	}
	idx := d.IndexOf(signerID)
	if idx < 0 || d.Signers[idx].Status != SignerStatusPending {
		return false
	}
	for i := 0; i < idx; i++ {
		if d.Signers[i].Status != SignerStatusSigned {
			return false
		}
	}
	return true
}

// CCList splits the carbon copy field into addresses.
func (d *Document) CCList() []string {
	var out []string
	for _, part := range strings.Split(d.CarbonCopy, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
