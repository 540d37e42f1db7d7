package rpc

import (
	"errors"
	"fmt"
)

// Error represents a structured JSON-RPC error object.
type Error struct {
	// Code is an error code indicating the type of failure.
	Code int64 `json:"code"`
	// Message is a short description of the error.
	Message string `json:"message"`
}

// The error codes defined by the JSON-RPC 2.0 specification.
const (
	// CodeParseError is used when invalid JSON was received by the server.
	CodeParseError = int64(-32700)
	// CodeInvalidRequest is used when the JSON sent is not a valid Request
	// object.
	CodeInvalidRequest = int64(-32600)
	// CodeMethodNotFound is used when the method does not exist or is not
	// available.
	CodeMethodNotFound = int64(-32601)
	// CodeInvalidParams is used when the method parameters are invalid.
	CodeInvalidParams = int64(-32602)
	// CodeInternalError is used for all other failures inside the server.
	CodeInternalError = int64(-32603)
)

var (
	ErrParse          = NewError(CodeParseError, "JSON RPC parse error")
	ErrInvalidRequest = NewError(CodeInvalidRequest, "JSON RPC invalid request")
	ErrMethodNotFound = NewError(CodeMethodNotFound, "JSON RPC method not found")
	ErrInvalidParams  = NewError(CodeInvalidParams, "JSON RPC invalid params")
	ErrInternal       = NewError(CodeInternalError, "JSON RPC internal error")
)

// NewError returns an error that will encode on the wire correctly.
func NewError(code int64, message string) error {
	return &Error{Code: code, Message: message}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// toWireError converts err into the structured form used on the wire.
// Wrapped *Error values keep their code; everything else becomes an
// internal error.
func toWireError(err error) *Error {
	if err == nil {
		return nil
	}
	var wrapped *Error
	if errors.As(err, &wrapped) {
		return &Error{Code: wrapped.Code, Message: err.Error()}
	}
	return &Error{Code: CodeInternalError, Message: fmt.Sprintf("%s: %s", ErrInternal.Error(), err)}
}
