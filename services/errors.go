package services

import "errors"

// Kind classifies a business failure so controllers can map it to an HTTP
// status without string-matching messages.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidRequest
	KindConflict
	KindForbidden
	KindUnauthorized
)

type ServiceError struct {
	Kind    Kind
	Message string
}

func (e *ServiceError) Error() string { return e.Message }

func notFound(msg string) error       { return &ServiceError{Kind: KindNotFound, Message: msg} }
func invalidRequest(msg string) error { return &ServiceError{Kind: KindInvalidRequest, Message: msg} }
func conflict(msg string) error       { return &ServiceError{Kind: KindConflict, Message: msg} }
func forbidden(msg string) error      { return &ServiceError{Kind: KindForbidden, Message: msg} }
func unauthorized(msg string) error   { return &ServiceError{Kind: KindUnauthorized, Message: msg} }

// KindOf returns the failure kind, or 0 for system-level errors (store
// unavailable and the like), which callers should treat as 500s.
func KindOf(err error) Kind {
	var se *ServiceError
	if errors.As(err, &se) {
		return se.Kind
	}
	return 0
}
