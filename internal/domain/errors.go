package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNetworkNotFound is returned when a network name is not configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrChainIDMismatch is returned when an endpoint reports a different chain ID
	ErrChainIDMismatch = errors.New("chain ID mismatch")

	// ErrEmptyEndpoint is returned when a network has no endpoint URL
	ErrEmptyEndpoint = errors.New("empty endpoint URL")

	// ErrInvalidPrivateKey is returned when an account credential is not a secp256k1 key
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrUnsupportedFormat is returned for unknown export formats
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrValidationFailed is returned by strict validation when error-level issues exist
	ErrValidationFailed = errors.New("validation failed")
)

// NetworkNotFoundErr carries the requested name and close matches
type NetworkNotFoundErr struct {
	Name        string
	Suggestions []string
}

func (e NetworkNotFoundErr) Error() string {
	msg := fmt.Sprintf("network '%s' not found", e.Name)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e NetworkNotFoundErr) Unwrap() error {
	return ErrNetworkNotFound
}

// ChainIDMismatchErr reports the chain ID an endpoint returned against the configured one
type ChainIDMismatchErr struct {
	Network  string
	Expected uint64
	Actual   uint64
}

func (e ChainIDMismatchErr) Error() string {
	return fmt.Sprintf("chain ID mismatch for %s: expected %d, got %d", e.Network, e.Expected, e.Actual)
}

func (e ChainIDMismatchErr) Unwrap() error {
	return ErrChainIDMismatch
}
