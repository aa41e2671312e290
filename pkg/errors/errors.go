package errors

import (
	"fmt"
)

// ConfigError represents a configuration loading failure with optional path metadata.
type ConfigError struct {
	Path    string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ConfigError{Path: path, Message: message, Err: err}
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Path != "" {
		return fmt.Sprintf("config error: %s: %s", e.Path, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures invalid input, either a configuration field or a
// locally rejected user entry.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RemoteError represents a failed call to an external service. Message is the
// human-readable text shown to the user; StatusCode is zero for transport
// failures.
type RemoteError struct {
	Service    string
	StatusCode int
	Message    string
	Err        error
}

// NewRemoteError constructs a RemoteError.
func NewRemoteError(service string, status int, message string, err error) error {
	return &RemoteError{Service: service, StatusCode: status, Message: message, Err: err}
}

func (e *RemoteError) Error() string {
	if e == nil {
		return ""
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s error (status %d): %s", e.Service, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Service, e.Message)
}

// Unwrap exposes the underlying error.
func (e *RemoteError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WalletError indicates issues loading or connecting a wallet adapter.
type WalletError struct {
	Adapter string
	Message string
	Err     error
}

// NewWalletError constructs a WalletError for the given adapter.
func NewWalletError(adapter string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &WalletError{Adapter: adapter, Message: message, Err: err}
}

func (e *WalletError) Error() string {
	if e == nil {
		return ""
	}
	if e.Adapter != "" {
		return fmt.Sprintf("wallet error [%s]: %s", e.Adapter, e.Message)
	}
	return fmt.Sprintf("wallet error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *WalletError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
