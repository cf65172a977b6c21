package service

import (
	"errors"
	"fmt"
)

// ErrorCode is the machine-readable part of an ExplorerError, rendered as error.code in API bodies.
type ErrorCode string

const (
	// ErrEntityNotFound: the id is not a current child of the tree node, or the instance source has no such instance.
	ErrEntityNotFound ErrorCode = "entity_not_found"
	// ErrBadParameter: a request parameter violates the API document.
	ErrBadParameter ErrorCode = "bad_parameter"
	// ErrInternalServerError: the instance source failed, or anything not classified above.
	ErrInternalServerError ErrorCode = "internal_server_error"
)

// ExplorerError is the classified error returned by tree nodes and instance sources.
// Only Code and Message are shown to API clients; Inner stays in logs and in the errors.Is chain.
type ExplorerError struct {
	Code    ErrorCode `json:"code,omitempty"`
	Message string    `json:"message"`
	Inner   error     `json:"-"`
}

func NewExplorerError(code ErrorCode, message string, inner error) *ExplorerError {
	return &ExplorerError{Code: code, Message: message, Inner: inner}
}

// classify keeps the first classification: if inner already carries an ExplorerError that one is returned, so an
// instance source's entity_not_found is not turned into internal_server_error by the tree node that wraps it.
func classify(code ErrorCode, message string, inner error) *ExplorerError {
	if classified := AsExplorerError(inner); classified != nil {
		return classified
	}
	return NewExplorerError(code, message, inner)
}

func NewEntityNotFoundError(message string, inner error) *ExplorerError {
	return classify(ErrEntityNotFound, message, inner)
}

func NewBadParameterError(message string, inner error) *ExplorerError {
	return classify(ErrBadParameter, message, inner)
}

func NewInternalServerError(message string, inner error) *ExplorerError {
	return classify(ErrInternalServerError, message, inner)
}

// NewNotAChildError reports an id absent from the child index of the node labelled parent.
func NewNotAChildError(instanceID, parent string) *ExplorerError {
	return NewExplorerError(ErrEntityNotFound, fmt.Sprintf("instance %q is not a child of %s", instanceID, parent), nil)
}

// NewUnknownInstanceError reports a status lookup for an instance the source has no record of.
// scope names where the source looked (a region, a key).
func NewUnknownInstanceError(instanceID, scope string, inner error) *ExplorerError {
	return NewExplorerError(ErrEntityNotFound, fmt.Sprintf("instance %q not found in %s", instanceID, scope), inner)
}

// NewListingError reports a ListInstances sequence that failed before it was drained.
func NewListingError(region string, inner error) *ExplorerError {
	return classify(ErrInternalServerError, fmt.Sprintf("listing instances in %s failed", region), inner)
}

func (e *ExplorerError) Error() string {
	if e.Inner != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Inner)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ExplorerError) Unwrap() error {
	return e.Inner
}

// AsExplorerError returns the first ExplorerError in err's chain, or nil.
func AsExplorerError(err error) *ExplorerError {
	var e *ExplorerError
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// CodeOf returns the code of the ExplorerError in err's chain, or "" for unclassified errors.
func CodeOf(err error) ErrorCode {
	if e := AsExplorerError(err); e != nil {
		return e.Code
	}
	return ""
}

// HasCode reports whether err is classified with code.
func HasCode(err error, code ErrorCode) bool {
	e := AsExplorerError(err)
	return e != nil && e.Code == code
}
