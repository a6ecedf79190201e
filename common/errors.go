package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a required network or identifier is
	// missing.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnsupportedNetwork is returned for networks outside of the supported set.
	ErrUnsupportedNetwork = errors.New("unsupported network")

	// ErrUnsupportedOperation is returned when a supported network has no link
	// template for the requested resource on the configured explorer.
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrMalformedURL is returned when a generated link lacks a scheme, host or
	// path. Templates are static so this always points at a bad base path or a
	// bug in a template.
	ErrMalformedURL = errors.New("malformed explorer url")
)

// OperationError describes a network/resource combination that no explorer
// template covers. It matches ErrUnsupportedOperation with errors.Is.
type OperationError struct {
	Network  string
	Kind     string
	BasePath string
	Reason   string
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("%s links are not supported on %s", e.Kind, e.Network)
	if e.BasePath != "" {
		msg = fmt.Sprintf("%s with explorer %s", msg, e.BasePath)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Reason)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	return ErrUnsupportedOperation
}
