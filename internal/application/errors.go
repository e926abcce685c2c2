package application

import (
	"errors"
)

// ErrorKind classifies service errors for the transport layer.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
)

type serviceError struct {
	kind ErrorKind
	msg  string
}

func (e *serviceError) Error() string {
	return e.msg
}

func newError(kind ErrorKind, msg string) error {
	return &serviceError{kind: kind, msg: msg}
}

var (
	ErrFileRequired   = newError(KindValidation, "File is required")
	ErrPhonesRequired = newError(KindValidation, "Phones must be a non-empty array of strings")
	ErrPhoneRequired  = newError(KindValidation, "File and phone are required")
	ErrReasonRequired = newError(KindValidation, "Code, file_id, and reason are required")

	ErrSignerNotFound     = newError(KindNotFound, "Signer not found")
	ErrDocumentMismatch   = newError(KindNotFound, "Document not found or file_id mismatch")
	ErrFileNotFound       = newError(KindNotFound, "File not found")
	ErrPoDocumentNotFound = newError(KindNotFound, "Document not found")
	ErrPoNotSignable      = newError(KindNotFound, "Document not found or already signed/rejected")

	ErrAlreadySigned      = newError(KindConflict, "Signer has already signed")
	ErrCannotSignRejected = newError(KindConflict, "Cannot sign a rejected document")
	ErrAlreadyRejected    = newError(KindConflict, "Signer has already been rejected")
	ErrCannotRejectSigned = newError(KindConflict, "Cannot reject a signed signer")
	ErrPoAlreadyRejected  = newError(KindConflict, "Document has already been rejected")
	ErrPoAlreadySigned    = newError(KindConflict, "Document already signed")
)

// InvalidPhoneError names the phone entry that failed normalization.
type InvalidPhoneError struct {
	Phone string
}

func (e *InvalidPhoneError) Error() string {
	return "Invalid phone number: " + e.Phone
}

// KindOf reports how err should be surfaced. Anything not raised by the
// service itself is internal.
func KindOf(err error) ErrorKind {
	var se *serviceError
	if errors.As(err, &se) {
		return se.kind
	}
	var pe *InvalidPhoneError
	if errors.As(err, &pe) {
		return KindValidation
	}
	return KindInternal
}
