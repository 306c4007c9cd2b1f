// Package analysis orchestrates a classification request end to end:
// validate the payload, build the prompt, call the language-model gateway,
// parse the category, persist the history record, and return the raw
// response text.
package analysis

import "net/http"

// ErrorKind classifies an operation failure for HTTP status mapping.
type ErrorKind int

const (
	// KindValidation means the client payload was missing or empty.
	KindValidation ErrorKind = iota
	// KindGateway means the external language-model call failed.
	KindGateway
	// KindPersistence means the history store write or read failed.
	KindPersistence
)

// OperationError is the single error type returned by the service. The
// HTTP layer maps Kind to a status code; Err carries the diagnostic the
// error envelope surfaces.
type OperationError struct {
	Kind ErrorKind
	Err  error
}

func (e *OperationError) Error() string {
	return e.Err.Error()
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the status code for the error kind.
func (e *OperationError) HTTPStatus() int {
	if e.Kind == KindValidation {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func validationError(err error) *OperationError {
	return &OperationError{Kind: KindValidation, Err: err}
}

func gatewayError(err error) *OperationError {
	return &OperationError{Kind: KindGateway, Err: err}
}

func persistenceError(err error) *OperationError {
	return &OperationError{Kind: KindPersistence, Err: err}
}
