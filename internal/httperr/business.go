package httperr

import "errors"

type Kind int

const (
	KindValidation Kind = iota
	KindConflict
	KindNotFound
)

// AppError is a business failure surfaced to the caller. Validation
// errors carry field-level detail; conflicts may be retried against a
// different slot; not-found is fatal to the request.
type AppError struct {
	Kind    Kind
	Code    string
	Field   string
	Message string
}

func (e *AppError) Error() string {
	return e.Code
}

func Validation(code, field, message string) error {
	return &AppError{Kind: KindValidation, Code: code, Field: field, Message: message}
}

func Conflict(code, message string) error {
	return &AppError{Kind: KindConflict, Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return &AppError{Kind: KindNotFound, Code: code, Message: message}
}

func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func Is(err error, code string) bool {
	if ae, ok := As(err); ok {
		return ae.Code == code
	}
	return false
}
